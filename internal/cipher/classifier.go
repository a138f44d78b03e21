package cipher

// NumClasses is the number of interleaved position classes.
const NumClasses = 6

// ClassOf maps a ciphertext position to its class 0-5. The formula
// partitions any index range deterministically: positions with equal
// parity and equal residue mod 3 share a class.
func ClassOf(position int) int {
	return (position%2)*3 + (position % 3)
}
