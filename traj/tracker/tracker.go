/*
 * tracker.go, part of goKin.
 *
 * Copyright 2024 The goKin authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package tracker reads and writes the CSV files produced by motion trackers:
//one header line with the column names, and one line per sample.
//Files ending in .zst are zstd-compressed, and files ending in .gz are gzip-compressed.
package tracker

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//The columns read by default from a tracker file.
var DefaultColumns = []string{"time", "pos_x", "pos_y", "pos_z"}

//Data holds some columns of a tracker or results file.
type Data struct {
	filename string
	names    []string
	cols     map[string][]float64
}

//Len returns the number of samples (rows).
func (D *Data) Len() int {
	if len(D.names) == 0 {
		return 0
	}
	return len(D.cols[D.names[0]])
}

//Names returns the names of the columns read, in order.
func (D *Data) Names() []string {
	return append([]string(nil), D.names...)
}

//Col returns the column with the given name, or nil if it was not read.
//The slice is not copied.
func (D *Data) Col(name string) []float64 {
	return D.cols[name]
}

//Shift subtracts t0 from every value in the column name. It is meant to put the
//time of a trial relative to its start.
func (D *Data) Shift(name string, t0 float64) {
	for i := range D.cols[name] {
		D.cols[name][i] -= t0
	}
}

//FileName returns the name of the tracker file for the given trial in dir,
//i.e. dir/controllertracker_movement_TXXX.csv
func FileName(dir string, trial int) string {
	return filepath.Join(dir, fmt.Sprintf("controllertracker_movement_T%03d.csv", trial))
}

//Thresholds returns initial_time - start_time for each row of a trial
//results file read with Read(name, "start_time", "initial_time").
func Thresholds(D *Data) ([]float64, error) {
	st := D.Col("start_time")
	it := D.Col("initial_time")
	if st == nil || it == nil {
		return nil, Error{"start_time and initial_time columns needed", D.filename, []string{"Thresholds"}, true}
	}
	ret := make([]float64, len(st))
	for i := range ret {
		ret[i] = it[i] - st[i]
	}
	return ret, nil
}

//Read opens the file name and reads the given columns from it. If no columns are given,
//DefaultColumns are read.
func Read(name string, columns ...string) (*Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	r, err := newReader(f, name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer r.Close()
	D, err := ReadFrom(r, name, columns...)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return D, nil
}

//ReadFrom reads the given columns from the uncompressed CSV data in r.
//name is only used in error messages.
func ReadFrom(r io.Reader, name string, columns ...string) (*Data, error) {
	if len(columns) == 0 {
		columns = DefaultColumns
	}
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	header, err := c.Read()
	if err != nil {
		return nil, Error{ReadError + ": header: " + err.Error(), name, []string{"ReadFrom"}, true}
	}
	index := make(map[string]int, len(header))
	for i, v := range header {
		index[strings.TrimSpace(v)] = i
	}
	D := &Data{filename: name, names: columns, cols: make(map[string][]float64, len(columns))}
	pos := make([]int, len(columns))
	for i, v := range columns {
		p, ok := index[v]
		if !ok {
			return nil, Error{fmt.Sprintf("%s: %q", MissingColumn, v), name, []string{"ReadFrom"}, true}
		}
		pos[i] = p
	}
	for line := 2; ; line++ {
		record, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Error{ReadError + ": " + err.Error(), name, []string{"ReadFrom"}, true}
		}
		for i, v := range columns {
			f, err := strconv.ParseFloat(strings.TrimSpace(record[pos[i]]), 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: line %d, column %s: %s", WrongFormat, line, v, err), name, []string{"ReadFrom"}, true}
			}
			D.cols[v] = append(D.cols[v], f)
		}
	}
	return D, nil
}

//Write writes the columns of D, in the order given by D.Names(), to the file name,
//compressing it if the extension is .zst or .gz.
func Write(name string, D *Data) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{UnableToOpen + ": " + err.Error(), name, []string{"Write"}, true}
	}
	w, err := newWriter(f, name)
	if err != nil {
		f.Close()
		return Error{UnableToOpen + ": " + err.Error(), name, []string{"Write"}, true}
	}
	c := csv.NewWriter(w)
	c.Write(D.names)
	record := make([]string, len(D.names))
	for i := 0; i < D.Len(); i++ {
		for j, v := range D.names {
			record[j] = strconv.FormatFloat(D.cols[v][i], 'g', -1, 64)
		}
		c.Write(record)
	}
	c.Flush()
	err = c.Error()
	if err2 := w.Close(); err == nil {
		err = err2
	}
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Error{WriteError + ": " + err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

//NewData builds a Data from names and the corresponding columns, which
//must all have the same length.
func NewData(names []string, cols ...[]float64) (*Data, error) {
	if len(names) != len(cols) {
		return nil, Error{fmt.Sprintf("%d names for %d columns", len(names), len(cols)), "", []string{"NewData"}, true}
	}
	D := &Data{names: append([]string(nil), names...), cols: make(map[string][]float64, len(cols))}
	for i, v := range cols {
		if len(v) != len(cols[0]) {
			return nil, Error{fmt.Sprintf("column %s has %d rows, %s has %d", names[i], len(v), names[0], len(cols[0])), "", []string{"NewData"}, true}
		}
		D.cols[names[i]] = v
	}
	return D, nil
}

//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func newReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case ".gz":
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}

func newWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case ".gz":
		return gzip.NewWriter(w), nil
	default:
		return nopCloser{w}, nil
	}
}
