package ui

import(
	"context"
	"fmt"
	"net/http"

	hw "github.com/skypies/util/handlerware"

	"github.com/netbeen/flight-path-chronicle/ref"
)

// To prevent other libs colliding with us in the context.Value keyspace, use these private keys
type contextKey int
const(
	uiOptionsKey contextKey = iota
	datasetKey
)

// Rather than have every handler fetch the dataset and parse the options, they get passed
// directly to this handler type, that we use throughout ui/.
type DatasetHandler func(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request)

// ctxMaker pins the dataset for the life of the request, so a concurrent reload can't
// change it halfway through.
func (s *Server)ctxMaker(r *http.Request) context.Context {
	return context.WithValue(r.Context(), datasetKey, s.Dataset())
}

// handle builds the request context itself, rather than via hw.CtxMakerCallback, which
// is global and can't see which Server it belongs to.
func (s *Server)handle(dh DatasetHandler) http.HandlerFunc {
	ch := WithOpt(WithDataset(dh))
	return func(w http.ResponseWriter, r *http.Request) {
		ch(s.ctxMaker(r), w, r)
	}
}

func WithOpt(ch hw.ContextHandler) hw.ContextHandler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		r.ParseForm()

		opt,err := FormValueUIOptions(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if r.FormValue("debugoptions") != "" {
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(fmt.Sprintf("OK\n%#v\n", opt)))
			return
		}

		ctx = context.WithValue(ctx, uiOptionsKey, opt)
		ch(ctx, w, r)
	}
}

func WithDataset(dh DatasetHandler) hw.ContextHandler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		ds,ok := GetDataset(ctx)
		if !ok {
			http.Error(w, "no dataset in context", http.StatusInternalServerError)
			return
		}
		opt,_ := GetUIOptions(ctx)
		dh(ds, opt, w, r)
	}
}

// Underlying handlers can call these to get at the per-request state
func GetUIOptions(ctx context.Context) (UIOptions,bool) {
	opt, ok := ctx.Value(uiOptionsKey).(UIOptions)
	return opt, ok
}
func GetDataset(ctx context.Context) (ref.Dataset,bool) {
	ds, ok := ctx.Value(datasetKey).(ref.Dataset)
	return ds, ok
}
