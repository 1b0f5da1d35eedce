package ref

import(
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// FileProvider reads two local files, whose suffixes pick the encoding (.json,
// .msgpack, .msgpack.zst). Each file holds a bare list.
type FileProvider struct {
	AirportsFile string
	FlightsFile  string
}

func NewFileProvider(dir, ext string) FileProvider {
	return FileProvider{
		AirportsFile: filepath.Join(dir, "airports"+ext),
		FlightsFile: filepath.Join(dir, "flights"+ext),
	}
}

func (fp FileProvider)String() string { return "file:" + filepath.Dir(fp.AirportsFile) }

func readFile(ctx context.Context, path string, v interface{}) error {
	if err := ctx.Err(); err != nil { return err }
	f,err := os.Open(path)
	if err != nil { return err }
	defer f.Close()
	if err := decode(f, FormatFromName(path), v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func writeFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { return err }
	f,err := os.Create(path)
	if err != nil { return err }
	if err := encode(f, FormatFromName(path), v); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func (fp FileProvider)ListAirports(ctx context.Context) ([]fpc.Airport, error) {
	airports := []fpc.Airport{}
	err := readFile(ctx, fp.AirportsFile, &airports)
	return airports, err
}

func (fp FileProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	flights := []fpc.Flight{}
	err := readFile(ctx, fp.FlightsFile, &flights)
	return flights, err
}

// WriteLists is the inverse of a FileProvider read; handy for converting formats.
func (fp FileProvider)WriteLists(airports []fpc.Airport, flights []fpc.Flight) error {
	if err := writeFile(fp.AirportsFile, airports); err != nil { return err }
	return writeFile(fp.FlightsFile, flights)
}

// {{{ Snapshots

// A snapshot is the whole Dataset in one file (normally .msgpack.zst), so a deployment
// can ship a single artifact.

func SaveSnapshot(path string, ds Dataset) error {
	if err := writeFile(path, ds); err != nil {
		return fmt.Errorf("ref: save snapshot: %w", err)
	}
	return nil
}

func LoadSnapshot(path string) (Dataset, error) {
	ds := Dataset{}
	if err := readFile(context.Background(), path, &ds); err != nil {
		return Dataset{}, fmt.Errorf("ref: load snapshot: %w", err)
	}
	if ds.Loaded.IsZero() { ds.Loaded = time.Now().UTC() }
	return ds, nil
}

// SnapshotProvider serves a snapshot file as both lists.
type SnapshotProvider struct {
	Path string
}

func (sp SnapshotProvider)String() string { return "snapshot:" + sp.Path }

func (sp SnapshotProvider)ListAirports(ctx context.Context) ([]fpc.Airport, error) {
	ds,err := LoadSnapshot(sp.Path)
	return ds.Airports, err
}

func (sp SnapshotProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	ds,err := LoadSnapshot(sp.Path)
	return ds.Flights, err
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
