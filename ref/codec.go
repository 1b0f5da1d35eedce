package ref

import(
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is picked from a file or object name's suffix.
type Format int
const(
	JSON Format = iota
	Msgpack
	MsgpackZstd
)

func (f Format)String() string {
	switch f {
	case Msgpack:     return "msgpack"
	case MsgpackZstd: return "msgpack+zstd"
	default:          return "json"
	}
}

func FormatFromName(name string) Format {
	switch {
	case strings.HasSuffix(name, ".msgpack.zst"): return MsgpackZstd
	case strings.HasSuffix(name, ".msgpack"):     return Msgpack
	default:                                      return JSON
	}
}

// msgpack uses the json tags, so both encodings share field names.
const structTag = "json"

func decode(r io.Reader, f Format, v interface{}) error {
	switch f {
	case MsgpackZstd:
		zr,err := zstd.NewReader(r)
		if err != nil { return fmt.Errorf("zstd reader: %w", err) }
		defer zr.Close()
		r = zr
		fallthrough
	case Msgpack:
		dec := msgpack.NewDecoder(r)
		dec.SetCustomStructTag(structTag)
		return dec.Decode(v)
	default:
		return json.NewDecoder(r).Decode(v)
	}
}

func encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case MsgpackZstd:
		zw,err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil { return fmt.Errorf("zstd writer: %w", err) }
		enc := msgpack.NewEncoder(zw)
		enc.SetCustomStructTag(structTag)
		if err := enc.Encode(v); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case Msgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag(structTag)
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		return enc.Encode(v)
	}
}
