package mock

import (
	"context"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

var _ carbon.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of carbon.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, path string) ([]*carbon.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, path string) ([]*carbon.Document, error) {
	return l.LoadFn(ctx, path)
}

var _ carbon.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of carbon.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentsFn func(ctx context.Context, docs []*carbon.Document) error
}

func (w *DocumentWriter) WriteDocuments(ctx context.Context, docs []*carbon.Document) error {
	return w.WriteDocumentsFn(ctx, docs)
}
