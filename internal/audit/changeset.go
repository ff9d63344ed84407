// Package audit computes minimal change-sets between entity states and
// builds audit records out of them. Everything here is pure: no I/O, no
// clock reads, identical inputs always produce identical output. Record
// identifiers and timestamps are assigned by the persistence sink.
package audit

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ComputeChanges returns the subset of newState whose values differ from
// oldState, after dropping the excluded top-level fields.
//
// A nil oldState means the entity did not previously exist; newState is
// returned as-is with no diffing and no exclusions. Otherwise, object-valued
// fields are compared by the id of the referenced entity: equal ids drop the
// field even when other sub-fields differ. A differing or unprovable identity
// keeps the object, reduced one level by dropping any sub-references whose
// own ids match the prior state. Scalars compare by
// kind-aware string representation, so 1 and "1" are equal but differently
// formatted timestamps are not conflated. Keys present only in oldState are
// ignored; the result reports changes visible through newState's keys.
func ComputeChanges(newState, oldState map[string]any, exclude []string) map[string]any {
	if oldState == nil {
		return newState
	}

	changes := make(map[string]any, len(newState))
	for k, v := range newState {
		if slices.Contains(exclude, k) {
			continue
		}

		if nested, ok := v.(map[string]any); ok {
			if diff, changed := diffNested(nested, oldState[k]); changed {
				changes[k] = diff
			}
			continue
		}

		old, present := oldState[k]
		if !present || !equalScalar(v, old) {
			changes[k] = v
		}
	}

	return changes
}

// diffNested compares an object-valued field against its prior value.
// Returns the (possibly reduced) object and whether it counts as changed.
func diffNested(v map[string]any, oldVal any) (map[string]any, bool) {
	old, ok := oldVal.(map[string]any)
	if !ok {
		// No prior object to compare against.
		return v, true
	}

	if id, found := referenceID(v); found {
		if oldID, oldFound := referenceID(old); oldFound && id == oldID {
			// Identity equality short-circuits deeper comparison.
			return nil, false
		}
	}

	// A different identity, or none to compare: recurse one level and drop
	// sub-fields that are references to the same entity as before. An object
	// with a differing id keeps that id as a scalar, so it never reduces to
	// empty here.
	reduced := make(map[string]any, len(v))
	for k, sub := range v {
		subObj, isObj := sub.(map[string]any)
		if !isObj {
			reduced[k] = sub
			continue
		}
		subID, found := referenceID(subObj)
		if !found {
			reduced[k] = sub
			continue
		}
		if oldSub, ok := old[k].(map[string]any); ok {
			if oldSubID, oldFound := referenceID(oldSub); oldFound && subID == oldSubID {
				continue
			}
		}
		reduced[k] = sub
	}

	if len(reduced) == 0 {
		return nil, false
	}
	return reduced, true
}

// referenceID extracts the stringified id of a reference object.
// Returns false when the id is absent, nil, or empty.
func referenceID(obj map[string]any) (string, bool) {
	id, ok := obj["id"]
	if !ok || id == nil {
		return "", false
	}
	s := stringify(id)
	if s == "" {
		return "", false
	}
	return s, true
}

// equalScalar compares two scalar values by their kind-aware string form.
func equalScalar(a, b any) bool {
	return stringify(a) == stringify(b)
}

// stringify renders a scalar into its canonical comparison form. Each kind
// gets an explicit rule rather than a blanket cast: ids and strings compare
// verbatim, numbers by decimal form, times by UTC RFC 3339.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case *int:
		if t == nil {
			return ""
		}
		return strconv.Itoa(*t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339Nano)
	case uuid.UUID:
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
