package guide

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"Railcalc/internal/catalog"

	"github.com/vmihailenco/msgpack/v5"
)

// Row is one line of the ranked table. On the wire, JSON and msgpack alike,
// it is the [name, factor] pair the configurator renders.
type Row struct {
	Name   string `json:"name"`
	Factor string `json:"factor"`
}

func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r.Name, r.Factor})
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	r.Name, r.Factor = pair[0], pair[1]
	return nil
}

func (r Row) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString(r.Name); err != nil {
		return err
	}
	return enc.EncodeString(r.Factor)
}

func (r *Row) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("row: want 2 elements, got %d", n)
	}
	if r.Name, err = dec.DecodeString(); err != nil {
		return err
	}
	r.Factor, err = dec.DecodeString()
	return err
}

// Value parses Factor back into a number.
func (r Row) Value() float64 { return ParseFactor(r.Factor) }

// capacity maps a load kind onto the catalog rating that carries it.
func capacity(it catalog.Item, k Kind) float64 {
	var p *float64
	switch k {
	case KindAxial, KindAxial2:
		p = it.Axial
	case KindRadial, KindRadial2:
		p = it.Radial
	case KindMx:
		p = it.Mx
	case KindMy:
		p = it.My
	case KindMzs:
		p = it.Mzs
	case KindMzd:
		p = it.Mzd
	}
	if p == nil {
		return 0
	}
	return *p
}

// SafetyFactor combines utilisation ratios as K = 1 / Σ(load/capacity).
// Kinds without a positive load or a positive capacity are skipped; if
// nothing is left K is 0.
func SafetyFactor(c Components, it catalog.Item) float64 {
	sum := 0.0
	for _, k := range Kinds {
		load := c.Get(k)
		rated := capacity(it, k)
		if load > 0 && rated > 0 {
			sum += load / rated
		}
	}
	if sum > 0 {
		return 1 / sum
	}
	return 0
}

// Rank computes a row for every item and sorts by factor, highest first.
// Equal factors keep catalog order.
func Rank(c Components, items []catalog.Item) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{Name: it.Name, Factor: FormatFactor(SafetyFactor(c, it))})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value() > rows[j].Value()
	})
	return rows
}

// FormatFactor renders k with two fraction digits and a comma separator.
func FormatFactor(k float64) string {
	return strings.Replace(strconv.FormatFloat(k, 'f', 2, 64), ".", ",", 1)
}

func ParseFactor(s string) float64 {
	v, err := ParseDecimal(s)
	if err != nil {
		return 0
	}
	return v
}
