package chego

import "testing"

func TestBuildHuffmanTree(t *testing.T) {
	var freq [218]int
	freq[9] = 5
	freq[22] = 3
	freq[17] = 1

	root := BuildHuffmanTree(freq)
	if root == nil {
		t.Fatal("expected a non-nil tree")
	}

	var codes [218]string
	TraversePreOrder(root, &codes, "")

	if codes[9] == "" || codes[22] == "" || codes[17] == "" {
		t.Fatalf("expected every non-zero frequency index to get a code, got %v", codes)
	}
	// The most frequent index gets the shortest code.
	if len(codes[9]) > len(codes[22]) || len(codes[9]) > len(codes[17]) {
		t.Fatalf("expected index 9 (highest frequency) to get the shortest code, got %v", codes)
	}
}

func TestBuildHuffmanTreeEmpty(t *testing.T) {
	var freq [218]int
	if root := BuildHuffmanTree(freq); root != nil {
		t.Fatalf("expected a nil tree for all-zero frequencies, got %v", root)
	}
}

func TestBuildHuffmanTreeSingleton(t *testing.T) {
	var freq [218]int
	freq[4] = 1

	var codes [218]string
	TraversePreOrder(BuildHuffmanTree(freq), &codes, "")

	if codes[4] == "" {
		t.Fatalf("expected index 4 to get a code, got %v", codes)
	}
}

func TestCompressDecompressMoveIndices(t *testing.T) {
	indices := []int{9, 9, 22, 17, 9, 22}

	bits, codes := CompressMoveIndices(indices)
	got := DecompressMoveIndices(bits, codes)

	if len(got) != len(indices) {
		t.Fatalf("expected %d indices, got %d", len(indices), len(got))
	}
	for i := range indices {
		if got[i] != indices[i] {
			t.Fatalf("expected %v\ngot %v", indices, got)
		}
	}
}

func BenchmarkBuildHuffmanTree(b *testing.B) {
	var freq [218]int
	freq[9], freq[22], freq[17], freq[4] = 10, 5, 3, 1

	for b.Loop() {
		BuildHuffmanTree(freq)
	}
}

func BenchmarkCompressMoveIndices(b *testing.B) {
	indices := []int{9, 9, 22, 17, 9, 22, 4, 9, 22}

	for b.Loop() {
		CompressMoveIndices(indices)
	}
}
