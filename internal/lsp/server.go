// Package lsp implements a language server for labtone palette files:
// diagnostics, color swatches and pickers, hover, completion, go to
// definition, formatting and semantic highlighting.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const serverName = "labtone-lsp"

var log = commonlog.GetLogger("labtone.lsp")

type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	version string
}

func NewServer(version string) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:                     s.initialize,
		Initialized:                    s.initialized,
		Shutdown:                       s.shutdown,
		SetTrace:                       s.setTrace,
		TextDocumentDidOpen:            s.textDocumentDidOpen,
		TextDocumentDidChange:          s.textDocumentDidChange,
		TextDocumentDidClose:           s.textDocumentDidClose,
		TextDocumentColor:              s.textDocumentColor,
		TextDocumentColorPresentation:  s.textDocumentColorPresentation,
		TextDocumentHover:              s.textDocumentHover,
		TextDocumentDefinition:         s.textDocumentDefinition,
		TextDocumentCompletion:         s.textDocumentCompletion,
		TextDocumentFormatting:         s.textDocumentFormatting,
		TextDocumentSemanticTokensFull: s.textDocumentSemanticTokensFull,
	}

	return s
}

// Run serves the protocol over stdin and stdout until the client exits.
func (s *Server) Run() error {
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		log.Infof("client %s connected", params.ClientInfo.Name)
	}

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "="},
	}
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes:     semanticTokenTypes,
			TokenModifiers: semanticTokenModifiers,
		},
		Full: true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// getResult returns the cached analysis for uri, or nil when the document
// is not open.
func (s *Server) getResult(uri string) *AnalysisResult {
	return s.docs.Result(uri)
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	result := s.docs.Open(string(params.TextDocument.URI), params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, result)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	var result *AnalysisResult
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			result = s.docs.Update(string(params.TextDocument.URI), c.Text)
		}
	}
	if result != nil {
		publishDiagnostics(ctx, params.TextDocument.URI, result)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(string(params.TextDocument.URI))
	publishDiagnostics(ctx, params.TextDocument.URI, nil)
	return nil
}

// publishDiagnostics replaces the client's diagnostics for uri. A nil
// result clears them.
func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, result *AnalysisResult) {
	diags := []protocol.Diagnostic{}
	if result != nil && result.Diagnostics != nil {
		diags = result.Diagnostics
	}
	log.Debugf("%s: %d diagnostics", uri, len(diags))

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}
