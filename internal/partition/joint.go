package partition

import "github.com/hal-29/hyperon-miner/internal/pattern"

// JointVariables returns the variables of block that also occur in
// other blocks of the partition, in the block's first-occurrence order.
// Joint variables are where the independence assumption breaks and the
// estimator must correct for cross-block consistency.
func JointVariables(part pattern.Partition, block pattern.Block) []pattern.Variable {
	var out []pattern.Variable
	for _, v := range block.Variables() {
		if countReferencingBlocks(part, v) >= 2 {
			out = append(out, v)
		}
	}
	return out
}

// AllJointVariables returns every variable shared across two or more
// blocks of the partition, in partition first-occurrence order. Joint
// variables are meaningful only relative to this partition.
func AllJointVariables(part pattern.Partition) []pattern.Variable {
	var out []pattern.Variable
	seen := make(map[pattern.Variable]bool)
	for _, block := range part {
		for _, v := range block.Variables() {
			if seen[v] {
				continue
			}
			if countReferencingBlocks(part, v) >= 2 {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// ConnectedBlocks returns the blocks of part that reference v, in
// partition order.
func ConnectedBlocks(part pattern.Partition, v pattern.Variable) []pattern.Block {
	var out []pattern.Block
	for _, block := range part {
		if block.References(v) {
			out = append(out, block)
		}
	}
	return out
}

func countReferencingBlocks(part pattern.Partition, v pattern.Variable) int {
	n := 0
	for _, block := range part {
		if block.References(v) {
			n++
		}
	}
	return n
}
