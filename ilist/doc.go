// Package ilist implements the "index list" scratch structure used
// throughout the netgen generator: an ordered sequence of distinct
// integers supporting 1-based indexed removal, value removal, and a
// quirky pseudo-size counter that decrements on every removal attempt,
// successful or not.
//
// The pseudo-size accounting is not a convenience — it replicates a bug
// in the original NETGEN source that later callers (pick_head) depend on
// for their termination condition. Rebinding PseudoSize to Len will
// silently change the generated network. See List.PseudoSize.
package ilist
