package codebase

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/DanWlker/dart-json-serializable-helper/format"
	"github.com/DanWlker/dart-json-serializable-helper/generator"
)

const lsName = "dartdata"

type LSPServer struct {
	codebase *Codebase
	opts     generator.Options
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string, opts generator.Options) *LSPServer {
	ls := &LSPServer{
		version: version,
		opts:    opts,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCodeAction: ls.textDocumentCodeAction,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, ls.opts)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CodeActionProvider = &protocol.CodeActionOptions{
		CodeActionKinds: []protocol.CodeActionKind{protocol.CodeActionKindQuickFix},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(); err != nil {
		lspLogger().Warningf("scan %s: %s", ls.codebase.RootDir(), err)
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.codebase.ScanFile(path)
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	line := int(params.Range.Start.Line) + 1
	actions, err := ls.codebase.ActionsAt(path, line)
	if err != nil {
		lspLogger().Errorf("%s", err)
		return nil, nil
	}
	if len(actions) == 0 {
		return nil, nil
	}

	lines := ls.codebase.GetFile(path).File.Lines
	kind := protocol.CodeActionKindQuickFix
	var result []protocol.CodeAction
	for _, a := range actions {
		result = append(result, protocol.CodeAction{
			Title: a.Title,
			Kind:  &kind,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					params.TextDocument.URI: textEdits(lines, a.Edits),
				},
			},
		})
	}
	return result, nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, path string) {
	f := ls.codebase.GetFile(path)
	if f == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(f.File.Lines, ls.codebase.Diagnostics(path)),
	})
}

func diagnostics(lines []string, diags []generator.Diagnostic) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityInformation
	source := lsName
	result := []protocol.Diagnostic{}
	for _, d := range diags {
		n := d.Line - 1
		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(n)},
				End:   protocol.Position{Line: protocol.UInteger(n), Character: lineWidth(lines, n)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Error(),
		})
	}
	return result
}

// textEdits converts line edits into protocol edits. A replaced range runs
// from the start of its first line to the end of its last line.
func textEdits(lines []string, edits []format.Edit) []protocol.TextEdit {
	result := make([]protocol.TextEdit, 0, len(edits))
	for _, e := range edits {
		start := protocol.Position{Line: protocol.UInteger(e.StartLine - 1)}
		if e.IsInsert() {
			result = append(result, protocol.TextEdit{
				Range:   protocol.Range{Start: start, End: start},
				NewText: e.NewText + "\n",
			})
			continue
		}
		last := e.EndLine - 1
		result = append(result, protocol.TextEdit{
			Range: protocol.Range{
				Start: start,
				End:   protocol.Position{Line: protocol.UInteger(last), Character: lineWidth(lines, last)},
			},
			NewText: e.NewText,
		})
	}
	return result
}

// lineWidth is the length of line n in UTF-16 code units.
func lineWidth(lines []string, n int) protocol.UInteger {
	if n < 0 || n >= len(lines) {
		return 0
	}
	return protocol.UInteger(len(utf16.Encode([]rune(lines[n]))))
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
