package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/gitmeta/internal/meta"
)

// resolveDir defaults an empty tool dir input to the ambient directory.
func resolveDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// repoFor resolves a Repo for a tool call's dir input.
func repoFor(ctx context.Context, runner meta.Runner, dir string) (*meta.Repo, error) {
	repo, err := meta.NewRepo(ctx, runner, resolveDir(dir))
	if err != nil {
		return nil, fmt.Errorf("resolving clone: %w", err)
	}
	return repo, nil
}

// --- root tool ---

// RootInput is the input for the root tool.
type RootInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory inside the clone (default: current directory)"`
}

// RootOutput is the output for the root tool.
type RootOutput struct {
	WorkingDir string `json:"working_dir" jsonschema:"root of the clone"`
	GitDir     string `json:"git_dir"     jsonschema:".git directory of the clone"`
}

func handleRoot(runner meta.Runner) mcp.ToolHandlerFor[RootInput, RootOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RootInput) (*mcp.CallToolResult, RootOutput, error) {
		repo, err := repoFor(ctx, runner, input.Dir)
		if err != nil {
			return nil, RootOutput{}, err
		}
		return nil, RootOutput{WorkingDir: repo.WorkingDir, GitDir: repo.GitDir}, nil
	}
}

// --- version tool ---

// VersionInput is the input for the version tool (no parameters needed).
type VersionInput struct{}

// VersionOutput is the output for the version tool.
type VersionOutput struct {
	Version string `json:"version" jsonschema:"git-meta version string"`
}

func handleVersion(runner meta.Runner) mcp.ToolHandlerFor[VersionInput, VersionOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ VersionInput) (*mcp.CallToolResult, VersionOutput, error) {
		version, err := meta.Version(ctx, runner, "")
		if err != nil {
			return nil, VersionOutput{}, fmt.Errorf("getting tool version: %w", err)
		}
		return nil, VersionOutput{Version: version}, nil
	}
}

// --- is_open tool ---

// IsOpenInput is the input for the is_open tool.
type IsOpenInput struct {
	Dir       string `json:"dir,omitempty" jsonschema:"directory inside the clone (default: current directory)"`
	Submodule string `json:"submodule"     jsonschema:"submodule path relative to the clone root"`
}

// IsOpenOutput is the output for the is_open tool.
type IsOpenOutput struct {
	Submodule string `json:"submodule" jsonschema:"submodule path that was checked"`
	Open      bool   `json:"open"      jsonschema:"whether the submodule is open"`
}

func handleIsOpen(runner meta.Runner) mcp.ToolHandlerFor[IsOpenInput, IsOpenOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IsOpenInput) (*mcp.CallToolResult, IsOpenOutput, error) {
		repo, err := repoFor(ctx, runner, input.Dir)
		if err != nil {
			return nil, IsOpenOutput{}, err
		}
		return nil, IsOpenOutput{
			Submodule: input.Submodule,
			Open:      repo.IsOpen(input.Submodule),
		}, nil
	}
}

// --- open tool ---

// OpenInput is the input for the open tool.
type OpenInput struct {
	Dir        string   `json:"dir,omitempty"        jsonschema:"directory inside the clone (default: current directory)"`
	Submodules []string `json:"submodules,omitempty" jsonschema:"submodule paths relative to the clone root"`
}

// OpenOutput is the output for the open tool.
type OpenOutput struct {
	WorkingDir string   `json:"working_dir"          jsonschema:"root of the clone the command ran in"`
	Submodules []string `json:"submodules,omitempty" jsonschema:"submodule paths that were opened"`
}

func handleOpen(runner meta.Runner) mcp.ToolHandlerFor[OpenInput, OpenOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OpenInput) (*mcp.CallToolResult, OpenOutput, error) {
		repo, err := repoFor(ctx, runner, input.Dir)
		if err != nil {
			return nil, OpenOutput{}, err
		}
		if err := repo.Open(ctx, input.Submodules); err != nil {
			return nil, OpenOutput{}, fmt.Errorf("opening submodules: %w", err)
		}
		return nil, OpenOutput{WorkingDir: repo.WorkingDir, Submodules: input.Submodules}, nil
	}
}

// --- checkout tool ---

// CheckoutInput is the input for the checkout tool.
type CheckoutInput struct {
	Dir  string   `json:"dir,omitempty"  jsonschema:"directory inside the clone (default: current directory)"`
	Args []string `json:"args,omitempty" jsonschema:"parameters to pass to git meta checkout"`
}

// CheckoutOutput is the output for the checkout tool.
type CheckoutOutput struct {
	WorkingDir string `json:"working_dir" jsonschema:"root of the clone the command ran in"`
}

func handleCheckout(runner meta.Runner) mcp.ToolHandlerFor[CheckoutInput, CheckoutOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckoutInput) (*mcp.CallToolResult, CheckoutOutput, error) {
		repo, err := repoFor(ctx, runner, input.Dir)
		if err != nil {
			return nil, CheckoutOutput{}, err
		}
		if err := repo.Checkout(ctx, input.Args); err != nil {
			return nil, CheckoutOutput{}, fmt.Errorf("running checkout: %w", err)
		}
		return nil, CheckoutOutput{WorkingDir: repo.WorkingDir}, nil
	}
}
