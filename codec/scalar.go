package codec

import "strconv"

// Int stores int64 as base-10 ASCII, the same bytes kvcache.Int writes.
// Decode rejects anything strconv.ParseInt rejects (no whitespace, no "1.0")
// and returns that *strconv.NumError as-is.
type Int struct{}

var _ Codec[int64] = Int{}

func (Int) Encode(n int64) ([]byte, error) { return strconv.AppendInt(nil, n, 10), nil }
func (Int) Decode(b []byte) (int64, error) { return strconv.ParseInt(string(b), 10, 64) }

// Float stores float64 as the shortest decimal that round-trips.
// Decode also accepts exponent form, "NaN" and "±Inf".
type Float struct{}

var _ Codec[float64] = Float{}

func (Float) Encode(f float64) ([]byte, error) {
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}
func (Float) Decode(b []byte) (float64, error) { return strconv.ParseFloat(string(b), 64) }
