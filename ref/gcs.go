package ref

import(
	"context"
	"fmt"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// GCSProvider reads the two lists from objects in a bucket; object suffixes pick the
// encoding, as with files.
type GCSProvider struct {
	Bucket      string
	Prefix      string // e.g. "chronicle/"
	Ext         string // ".json", ".msgpack.zst", ...
	ClientOpts  []option.ClientOption
}

func (gp GCSProvider)String() string { return fmt.Sprintf("gs://%s/%s", gp.Bucket, gp.Prefix) }

func (gp GCSProvider)objectName(base string) string {
	ext := gp.Ext
	if ext == "" { ext = ".json" }
	return path.Join(gp.Prefix, base+ext)
}

func (gp GCSProvider)read(ctx context.Context, base string, v interface{}) error {
	client,err := storage.NewClient(ctx, gp.ClientOpts...)
	if err != nil { return fmt.Errorf("GCS client: %w", err) }
	defer client.Close()

	name := gp.objectName(base)
	gcsReader,err := client.Bucket(gp.Bucket).Object(name).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("GCS-Open %s|%s: %w", gp.Bucket, name, err)
	}
	defer gcsReader.Close()

	if err := decode(gcsReader, FormatFromName(name), v); err != nil {
		return fmt.Errorf("GCS-Decode %s|%s: %w", gp.Bucket, name, err)
	}
	return nil
}

func (gp GCSProvider)ListAirports(ctx context.Context) ([]fpc.Airport, error) {
	airports := []fpc.Airport{}
	err := gp.read(ctx, "airports", &airports)
	return airports, err
}

func (gp GCSProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	flights := []fpc.Flight{}
	err := gp.read(ctx, "flights", &flights)
	return flights, err
}
