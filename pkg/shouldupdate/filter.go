package shouldupdate

// ChildrenKey is the reserved nested-content key. It is excluded from props
// comparison: nested render content is reconciled by the host framework, not
// by this predicate. State is never filtered.
const ChildrenKey = "children"

// omitChildren returns a shallow copy of props without the reserved key.
// The input mapping is never modified.
func omitChildren(props Props) Props {
	filtered := make(Props, len(props))
	for k, v := range props {
		if k == ChildrenKey {
			continue
		}
		filtered[k] = v
	}
	return filtered
}
