package jsonkit

import "sort"

// Load reads every record of a JSON or JSONL file into memory.
// With WithSort the records are ordered by the given comparison,
// preserving the relative order of records that compare equal.
func Load(path string, opts ...Option) ([]Record, error) {
	c := toConfig(opts)
	it, err := Iter(path, opts...)
	if err != nil {
		return nil, err
	}
	records, err := it.Collect()
	if err != nil {
		return nil, err
	}
	if c.less != nil {
		sort.SliceStable(records, func(i, j int) bool {
			return c.less(records[i], records[j])
		})
	}
	return records, nil
}
