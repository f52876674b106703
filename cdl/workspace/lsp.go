package workspace

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/cdl/cdl"
	"github.com/dhamidi/cdl/cdl/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cdl"

type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
	presets   cdl.PresetsLookup
}

// SetPresets installs an optional preset snippet source consulted
// during completion. Must be called before RunStdio.
func (ls *LSPServer) SetPresets(presets cdl.PresetsLookup) {
	ls.presets = presets
}

func NewLSPServer(version string, cacheCapacity int) *LSPServer {
	ls := &LSPServer{
		workspace: New(cacheCapacity),
		version:   version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentHover:          ls.textDocumentHover,
		TextDocumentCompletion:     ls.textDocumentCompletion,
		TextDocumentCodeAction:     ls.textDocumentCodeAction,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentDefinition:     ls.textDocumentDefinition,
		TextDocumentFormatting:     ls.textDocumentFormatting,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"[", "{", ":", "|", "~", "$", "@"},
	}
	capabilities.HoverProvider = true
	capabilities.CodeActionProvider = true
	capabilities.DocumentSymbolProvider = true
	capabilities.DefinitionProvider = true
	capabilities.DocumentFormattingProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
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
	ls.updateAndPublish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.updateAndPublish(ctx, params.TextDocument.URI, textChange.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.updateAndPublish(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.CloseFile(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) updateAndPublish(ctx *glsp.Context, uri, content string) {
	path, err := uriToPath(uri)
	if err != nil {
		return
	}
	ls.workspace.UpdateFile(path, content)

	diags := ls.workspace.Diagnostics(path)
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, diag := range diags {
		out = append(out, toProtocolDiagnostic(diag))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: out,
	})
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	result, line, offset := ls.lineAt(params.TextDocument.URI, params.Position)
	if result == nil {
		return nil, nil
	}
	hover := cdl.HoverAt(result.Text, result.Tree, offset)
	if hover == nil {
		return nil, nil
	}
	rng := spanToRange(line, hover.Span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hover.Markdown,
		},
		Range: &rng,
	}, nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, result, offset := ls.docLineAt(params.TextDocument.URI, params.Position)
	if doc == nil {
		return nil, nil
	}
	var definitions []string
	var lineText string
	var tree *parser.Line
	if result != nil {
		lineText, tree = result.Text, result.Tree
	} else {
		lineText = lineContent(doc.Content, int(params.Position.Line))
		tree, _ = parser.ParseLine(lineText)
	}
	definitions = doc.Analysis.DefinitionNames()

	completions := cdl.CompleteAt(lineText, tree, offset, definitions, ls.presets)
	if len(completions) == 0 {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(completions))
	for _, c := range completions {
		item := protocol.CompletionItem{Label: c.Label}
		if c.Detail != "" {
			detail := c.Detail
			item.Detail = &detail
		}
		if c.InsertText != "" {
			insert := c.InsertText
			item.InsertText = &insert
		}
		if c.Doc != "" {
			item.Documentation = protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: c.Doc,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (ls *LSPServer) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.GetFile(path)
	if doc == nil {
		return nil, nil
	}

	line := int(params.Range.Start.Line)
	result := doc.Analysis.Line(line)
	if result == nil {
		return nil, nil
	}

	actions := cdl.ActionsFor(result.Text, result.Tree, result.Diags)
	if len(actions) == 0 {
		return nil, nil
	}

	kind := protocol.CodeActionKindQuickFix
	out := make([]protocol.CodeAction, 0, len(actions))
	for _, action := range actions {
		edit := protocol.TextEdit{
			Range:   spanToRange(line, action.Span),
			NewText: action.NewText,
		}
		out = append(out, protocol.CodeAction{
			Title: action.Title,
			Kind:  &kind,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					params.TextDocument.URI: {edit},
				},
			},
		})
	}
	return out, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.GetFile(path)
	if doc == nil {
		return nil, nil
	}

	symbols := doc.Analysis.Symbols()
	out := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, sym := range symbols {
		out = append(out, toProtocolSymbol(sym))
	}
	return out, nil
}

func (ls *LSPServer) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc, _, offset := ls.docLineAt(params.TextDocument.URI, params.Position)
	if doc == nil {
		return nil, nil
	}
	loc, ok := doc.Analysis.DefinitionAt(int(params.Position.Line), offset)
	if !ok {
		return nil, nil
	}
	return protocol.Location{
		URI:   params.TextDocument.URI,
		Range: spanToRange(loc.Line, loc.Span),
	}, nil
}

func (ls *LSPServer) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.GetFile(path)
	if doc == nil {
		return nil, nil
	}

	formatted := cdl.FormatDocument(doc.Content)
	if formatted == doc.Content {
		return nil, nil
	}

	lines := strings.Split(doc.Content, "\n")
	lastLine := len(lines) - 1
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(lastLine), Character: protocol.UInteger(len(lines[lastLine]))},
		},
		NewText: formatted,
	}}, nil
}

// lineAt resolves a protocol position to the analyzed line and the
// byte offset within it.
func (ls *LSPServer) lineAt(uri string, pos protocol.Position) (*cdl.LineResult, int, int) {
	doc, result, offset := ls.docLineAt(uri, pos)
	if doc == nil || result == nil {
		return nil, 0, 0
	}
	return result, int(pos.Line), offset
}

func (ls *LSPServer) docLineAt(uri string, pos protocol.Position) (*Document, *cdl.LineResult, int) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, nil, 0
	}
	doc := ls.workspace.GetFile(path)
	if doc == nil {
		return nil, nil, 0
	}
	return doc, doc.Analysis.Line(int(pos.Line)), int(pos.Character)
}

func lineContent(content string, number int) string {
	lines := strings.Split(content, "\n")
	if number < 0 || number >= len(lines) {
		return ""
	}
	return lines[number]
}

func toProtocolDiagnostic(diag cdl.DocDiagnostic) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	if diag.Severity == parser.SeverityWarning {
		severity = protocol.DiagnosticSeverityWarning
	}
	source := lsName
	return protocol.Diagnostic{
		Range:    spanToRange(diag.Line, diag.Span),
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: diag.Code},
		Source:   &source,
		Message:  diag.Message,
	}
}

func toProtocolSymbol(sym cdl.Symbol) protocol.DocumentSymbol {
	kind := protocol.SymbolKindClass
	switch sym.Kind {
	case cdl.SymbolDefinition:
		kind = protocol.SymbolKindVariable
	case cdl.SymbolForm:
		kind = protocol.SymbolKindField
	case cdl.SymbolModification:
		kind = protocol.SymbolKindOperator
	}
	out := protocol.DocumentSymbol{
		Name:           sym.Name,
		Kind:           kind,
		Range:          spanToRange(sym.Line, sym.Span),
		SelectionRange: spanToRange(sym.Line, sym.Span),
	}
	if sym.Detail != "" {
		detail := sym.Detail
		out.Detail = &detail
	}
	for _, child := range sym.Children {
		out.Children = append(out.Children, toProtocolSymbol(child))
	}
	return out
}

func spanToRange(line int, span parser.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(span.Start)},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(span.End)},
	}
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

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
