// Package encode writes ir nodes and fragment entries.
//
// YAML and JSON go through github.com/goccy/go-yaml using yaml.MapSlice,
// so object fields and fragment entries are written in their own order
// rather than sorted. Local tags such as !element are written in YAML and
// dropped in JSON.
//
// The text format is a flat view of fragment entries, one per line:
//
//	a[0]: 10
//	a[1]: 20
//	hdr: !element h1
//
// With EncodeColors, keys are colored by segment kind and values by type.
package encode
