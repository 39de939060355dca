/*
Package direct computes the exact O(N²) all-pairs kernel sum, the
reference oracle §8's correctness properties check the tree-based
evaluators against. It never partitions space and ignores the octree
package entirely.
*/
package direct
