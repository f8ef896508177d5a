/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephgoksu/promptwing/internal/locale"
	"github.com/josephgoksu/promptwing/internal/mcp"
	"github.com/josephgoksu/promptwing/internal/project"
	"github.com/josephgoksu/promptwing/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mcpWatch bool

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI tools like Claude Code,
Cursor and other assistants can build and score prompts directly.

Tools:
- optimize_frontend_prompt: build a structured prompt package
- score_frontend_prompt: score a prompt against the rubric
- scan_project: bounded tree of a directory in the working directory
- detect_project_context: frontend stack from package.json
- verify_implementation: the implementation review prompt
- echo: returns its input

With --watch, edits to the prompt override files are picked up without
restarting the server.

The server will run until the client disconnects.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command %q for %q\nRun '%s --help' for usage", args[0], cmd.CommandPath(), cmd.Root().Name())
		}
		return runMCPServer(cmd.Context())
	},
}

var mcpCallCmd = &cobra.Command{
	Use:   "call <tool> [json-arguments]",
	Short: "Run one MCP tool in-process and print its result",
	Long: `Run one MCP tool without starting a server. Arguments are the tool's JSON
object; "-" reads them from stdin.

Examples:
  promptwing mcp call score_frontend_prompt '{"prompt":"make it better"}'
  promptwing mcp call scan_project '{"rootDir":"src","maxDepth":2}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := toolArguments(cmd, args[1:])
		if err != nil {
			return err
		}
		handler, err := newToolHandler(loadCatalogs())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		result, err := handler.Call(ctx, args[0], raw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Text); err != nil {
			return err
		}
		if result.IsError {
			return errToolFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.AddCommand(mcpCallCmd)
	mcpCmd.Flags().BoolVar(&mcpWatch, "watch", false, "reload prompt overrides when their files change")
}

// toolArguments returns the JSON object given on the command line or stdin.
func toolArguments(cmd *cobra.Command, args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return json.RawMessage("{}"), nil
	}
	text := args[0]
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read arguments from stdin: %w", err)
		}
		text = string(data)
	}
	text = strings.TrimSpace(text)
	if !json.Valid([]byte(text)) {
		return nil, types.NewArgumentError("arguments", "must be a JSON object")
	}
	return json.RawMessage(text), nil
}

// newToolHandler wires the tool handler to the working directory.
func newToolHandler(catalogs *locale.Set) (*mcp.Handler, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return mcp.NewHandler(catalogs, optimizeDefaults(), newScanner(cwd), project.NewDetector(appFs)), nil
}

// mcpResponse wraps a handler result in an MCP tool result.
// Per MCP spec: tool errors are returned in the result (not as protocol errors)
// so the LLM can see them and self-correct.
func mcpResponse(r mcp.Result) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: r.Text}},
		IsError: r.IsError,
	}, nil
}

func runMCPServer(ctx context.Context) error {
	// NOTE: MCP uses stdio transport. stdout MUST be pure JSON-RPC.
	// All status/debug output goes to stderr only.
	fmt.Fprintln(os.Stderr, "PromptWing MCP Server starting...")

	catalogs := loadCatalogs()
	var watcher *locale.Watcher
	if mcpWatch {
		w, err := locale.NewWatcher(appFs, dataDir())
		if err != nil {
			return fmt.Errorf("watch prompt overrides: %w", err)
		}
		watcher = w
		catalogs = w.Current()
	}

	handler, err := newToolHandler(catalogs)
	if err != nil {
		return err
	}

	if watcher != nil {
		watcher.OnReload(func(s *locale.Set, err error) {
			handler.SetCatalogs(s)
			fmt.Fprintln(os.Stderr, "↻ Reloaded prompt overrides")
			if err != nil {
				fmt.Fprintf(os.Stderr, "⚠  %v\n", err)
			}
		})
		if err := watcher.Start(); err != nil {
			watcher.Stop()
			fmt.Fprintf(os.Stderr, "⚠  Not watching overrides: %v\n", err)
		} else {
			defer watcher.Stop()
			if viper.GetBool("verbose") {
				fmt.Fprintf(os.Stderr, "[DEBUG] Watching %s\n", dataDir())
			}
		}
	}

	impl := &mcpsdk.Implementation{
		Name:    "promptwing-mcp",
		Version: version,
	}

	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintf(os.Stderr, "✓ MCP connection established\n")
			if viper.GetBool("verbose") {
				fmt.Fprintf(os.Stderr, "[DEBUG] Client initialized\n")
			}
		},
	}

	server := mcpsdk.NewServer(impl, serverOpts)
	registerTools(server, handler)

	// Run the server (stdio transport only)
	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// registerTools adds every promptwing tool to server.
func registerTools(server *mcpsdk.Server, h *mcp.Handler) {
	tool := func(name mcp.ToolName) *mcpsdk.Tool {
		return &mcpsdk.Tool{Name: string(name), Description: name.Description()}
	}

	mcpsdk.AddTool(server, tool(mcp.ToolOptimize), func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcp.OptimizeParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpResponse(h.HandleOptimize(ctx, params.Arguments))
	})
	mcpsdk.AddTool(server, tool(mcp.ToolScore), func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcp.ScoreParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpResponse(h.HandleScore(ctx, params.Arguments))
	})
	mcpsdk.AddTool(server, tool(mcp.ToolScan), func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcp.ScanParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpResponse(h.HandleScan(ctx, params.Arguments))
	})
	mcpsdk.AddTool(server, tool(mcp.ToolDetect), func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcp.DetectParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpResponse(h.HandleDetect(ctx, params.Arguments))
	})
	mcpsdk.AddTool(server, tool(mcp.ToolVerify), func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcp.VerifyParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpResponse(h.HandleVerify(ctx, params.Arguments))
	})
	mcpsdk.AddTool(server, tool(mcp.ToolEcho), func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[mcp.EchoParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpResponse(h.HandleEcho(ctx, params.Arguments))
	})
}
