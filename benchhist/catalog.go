// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchhist

import (
	"fmt"
	"strconv"
	"strings"
)

// A MalformedLabelError reports a histogram label that does not name
// a transaction type of its workload's catalog.
type MalformedLabelError struct {
	Label    string
	Workload string
	Msg      string
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("label %q (%s): %s", e.Label, e.Workload, e.Msg)
}

// A Catalog is the ordered list of transaction type names of one
// workload. Histograms files identify a transaction by its 1-based
// position in this list. A Catalog is immutable.
type Catalog struct {
	workload string
	names    []string
}

// NewCatalog returns a Catalog for workload with the given
// transaction names, in label order.
func NewCatalog(workload string, names ...string) *Catalog {
	return &Catalog{workload, append([]string(nil), names...)}
}

// TPCC returns the catalog of the TPC-C workload.
func TPCC() *Catalog {
	return NewCatalog("tpcc", "NewOrder", "Payment", "OrderStatus", "Delivery", "StockLevel")
}

// GeoC returns the catalog of the geo-distributed GeoC workload.
func GeoC() *Catalog {
	return NewCatalog("geoc",
		"ApproveCart", "Payment", "OrderStatus", "Delivery", "StockLevel",
		"IncreaseCartLine", "DecreaseCartLine", "CheckCart", "Restock")
}

// DefaultCatalogs returns the catalogs of every known workload.
func DefaultCatalogs() []*Catalog {
	return []*Catalog{TPCC(), GeoC()}
}

// Workload returns the workload c describes.
func (c *Catalog) Workload() string {
	return c.workload
}

// Len returns the number of transaction types in c.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Name returns the name of transaction type i.
func (c *Catalog) Name(i int) string {
	return c.names[i]
}

// Names returns a copy of the transaction names of c.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// IndexOf returns the 0-based index of the transaction type a
// histogram label refers to. Labels have the form "<name>/<n>" where
// n is the 1-based position in c; the name part is not checked.
func (c *Catalog) IndexOf(label string) (int, error) {
	slash := strings.LastIndexByte(label, '/')
	if slash < 0 {
		return 0, &MalformedLabelError{label, c.workload, "missing /<index> suffix"}
	}
	n, err := strconv.Atoi(label[slash+1:])
	if err != nil {
		return 0, &MalformedLabelError{label, c.workload, fmt.Sprintf("invalid index %q", label[slash+1:])}
	}
	if n < 1 || n > len(c.names) {
		return 0, &MalformedLabelError{label, c.workload, fmt.Sprintf("index %d out of range [1, %d]", n, len(c.names))}
	}
	return n - 1, nil
}
