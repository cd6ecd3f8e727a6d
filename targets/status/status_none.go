//go:build !statusdisplay

package status

// Start is a no-op unless the build enables the statusdisplay tag.
func Start(desc string, id int, batches func() uint64) {}
