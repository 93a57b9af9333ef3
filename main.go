package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/cliparse"
	"github.com/danielhkuo/urban-services/commands"
	"github.com/danielhkuo/urban-services/listview"
	"github.com/danielhkuo/urban-services/session"
	"github.com/danielhkuo/urban-services/store"
)

func main() {
	// Parse configuration
	cfg, rest, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open local state
	kv, err := store.Open(cfg.StatePath)
	if err != nil {
		slog.Error("failed to open state file", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	// Wire client and session
	client := api.NewClient(cfg.APIBaseURL)
	sess := session.New(kv, client)
	if err := sess.Restore(); err != nil {
		slog.Error("failed to restore session", "error", err)
		os.Exit(1)
	}

	view := listview.New(client)
	renderer := &listview.Renderer{
		Out:    os.Stdout,
		Colors: !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd()),
	}
	cli := commands.New(os.Stdout, os.Stdin, client, sess, view, renderer)

	if len(rest) == 0 {
		landing(os.Stdout)
		return
	}

	// Command table
	table := map[string]func(context.Context, []string) error{
		"login":  cli.Login,
		"logout": cli.Logout,
		"whoami": cli.Whoami,
		"list":   cli.List,
		"create": cli.Create,
		"status": cli.Status,
		"delete": cli.Delete,
	}

	cmd, ok := table[rest[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "comando desconhecido: %s\n\n", rest[0])
		landing(os.Stderr)
		os.Exit(2)
	}

	// Ctrl-C cancels the in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd(ctx, rest[1:]); err != nil {
		slog.Error("command failed", "command", rest[0], "error", err)
		os.Exit(1)
	}
}

// landing is the CLI's front door, shown on bare invocation.
func landing(w *os.File) {
	fmt.Fprintln(w, "Bem-vindo ao Sistema de Solicitações Urbanas")
	fmt.Fprintln(w, "Plataforma para cadastro e gerenciamento de solicitações de serviços")
	fmt.Fprintln(w, "urbanos, como troca de lâmpadas em postes e reparo de vias públicas.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Uso: urban-services [-a <api-url>] [-s <state>] [--no-color] <comando>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Comandos:")
	fmt.Fprintln(w, "  list    [-t <tipo>] [-s <status>]   Listar solicitações")
	fmt.Fprintln(w, "  create  -t ... --address ...        Criar solicitação")
	fmt.Fprintln(w, "  status  <id> <novo-status>          Alterar status (autenticado)")
	fmt.Fprintln(w, "  delete  <id> [-y]                   Excluir solicitação pendente (autenticado)")
	fmt.Fprintln(w, "  login   -e <email> -p <senha>       Login administrativo")
	fmt.Fprintln(w, "  logout                              Encerrar sessão")
	fmt.Fprintln(w, "  whoami                              Mostrar sessão atual")
}
