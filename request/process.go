package request

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

// Options carries defaults used when the document omits a section.
type Options struct {
	Routing *router.Settings
}

// Decode reads a Document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode request document: %w", err)
	}
	return doc, nil
}

// Load decodes a document and prepares a Handler for it. Routing settings in
// the document take precedence over opts.
func Load(r io.Reader, source string, opts Options) (*Handler, Document, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, Document{}, err
	}

	warnings := internal.NewWarningAggregator()
	defer warnings.LogAll(source)

	cat, err := LoadCatalogue(doc.BaseRequests, warnings)
	if err != nil {
		return nil, Document{}, err
	}

	routing := opts.Routing
	if doc.RoutingSettings != nil {
		routing = doc.RoutingSettings
	}
	h, err := NewHandler(cat, routing, doc.RenderSettings)
	if err != nil {
		return nil, Document{}, err
	}
	return h, doc, nil
}

// Process reads a document from r and writes the answers to its stat
// requests to w as a JSON array.
func Process(r io.Reader, w io.Writer, opts Options) error {
	h, doc, err := Load(r, "request document", opts)
	if err != nil {
		return err
	}
	return h.WriteAnswers(w, doc.StatRequests)
}

// WriteAnswers answers reqs in order. Requests of unknown type are skipped.
func (h *Handler) WriteAnswers(w io.Writer, reqs []StatRequest) error {
	answers := make([]any, 0, len(reqs))
	skipped := internal.NewWarningAggregator()
	for _, req := range reqs {
		a, ok := h.Answer(req)
		if !ok {
			skipped.Add(internal.WarningUnknownRequestType, strconv.Itoa(req.ID))
			continue
		}
		answers = append(answers, a)
	}
	skipped.LogAll("stat requests")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	log.Printf("answered %d stat requests", len(answers))
	return nil
}
