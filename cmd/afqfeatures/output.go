// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fagan2888/afqinsight/features"
	"github.com/fagan2888/afqinsight/table"
)

// writeMatrix writes fm as CSV: a subjectID column, one column per key
// and a trailing "bias" column when present.
func writeMatrix(w io.Writer, fm *features.FeatureMatrix) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(fm.Columns)+2)
	header = append(header, table.ColSubject)
	for _, k := range fm.Columns {
		header = append(header, k.String())
	}
	if _, ok := fm.BiasIndex(); ok {
		header = append(header, "bias")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, subject := range fm.Subjects {
		values, err := fm.X.Row(i)
		if err != nil {
			return err
		}
		rec := make([]string, 0, len(values)+1)
		rec = append(rec, subject)
		for _, v := range values {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
