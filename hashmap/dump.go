package hashmap

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes a human-readable view of the table to w, one line per bucket:
//
//	Start Table
//		0	---
//		1	"key"(payload) - "other"(payload) -
//	End Table
//
// Empty buckets print "---". Chains are printed head first, which is the
// reverse of insertion order. Payloads are rendered with %v.
// Complexity: O(bucketCount + n).
func (m *HashMap) Dump(w io.Writer) error {
	if m == nil {
		return ErrNilMap
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Start Table")
	for i, head := range m.buckets {
		if head == nil {
			fmt.Fprintf(bw, "\t%d\t---\n", i)
			continue
		}
		fmt.Fprintf(bw, "\t%d\t", i)
		for e := head; e != nil; e = e.next {
			fmt.Fprintf(bw, "%q(%v) - ", e.key, e.value.Data())
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "End Table")

	return bw.Flush()
}
