package ref

import(
	"flag"
	"fmt"
)

// Source says where the lists come from, as set by command line flags. Kind is one of
// builtin, dir, snapshot, http, gcs or bq.
type Source struct {
	Kind    string
	Dir     string // dir
	Ext     string // dir, gcs
	Path    string // snapshot
	URL     string // http
	Bucket  string // gcs
	Prefix  string // gcs
	Project string // bq
	Dataset string // bq
}

func (s *Source)AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.Kind, "source", "builtin", "where the lists live: builtin, dir, snapshot, http, gcs, bq")
	fs.StringVar(&s.Dir, "dir", ".", "[dir] directory holding airports<ext> and flights<ext>")
	fs.StringVar(&s.Ext, "ext", ".json", "[dir,gcs] file suffix: .json, .msgpack, .msgpack.zst")
	fs.StringVar(&s.Path, "snapshot", "", "[snapshot] path to a .msgpack.zst snapshot")
	fs.StringVar(&s.URL, "url", "", "[http] base URL of another server")
	fs.StringVar(&s.Bucket, "bucket", "", "[gcs] bucket name")
	fs.StringVar(&s.Prefix, "prefix", "", "[gcs] object prefix")
	fs.StringVar(&s.Project, "project", "", "[bq] Google Cloud project")
	fs.StringVar(&s.Dataset, "bqdataset", "chronicle", "[bq] dataset holding the airports and flights tables")
}

func (s Source)Provider() (Provider, error) {
	switch s.Kind {
	case "", "builtin":
		return NewBuiltinProvider(), nil
	case "dir":
		return NewFileProvider(s.Dir, s.Ext), nil
	case "snapshot":
		if s.Path == "" { return nil, fmt.Errorf("source snapshot: no -snapshot path") }
		return SnapshotProvider{Path:s.Path}, nil
	case "http":
		if s.URL == "" { return nil, fmt.Errorf("source http: no -url") }
		return HTTPProvider{BaseURL:s.URL}, nil
	case "gcs":
		if s.Bucket == "" { return nil, fmt.Errorf("source gcs: no -bucket") }
		return GCSProvider{Bucket:s.Bucket, Prefix:s.Prefix, Ext:s.Ext}, nil
	case "bq":
		if s.Project == "" { return nil, fmt.Errorf("source bq: no -project") }
		return BigQueryProvider{Project:s.Project, Dataset:s.Dataset}, nil
	}
	return nil, fmt.Errorf("source '%s' not known", s.Kind)
}
