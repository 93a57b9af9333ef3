// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/document"
	"github.com/danielhkuo/urban-services/form"
	"github.com/danielhkuo/urban-services/listview"
	"github.com/danielhkuo/urban-services/models"
	"github.com/danielhkuo/urban-services/session"
)

var (
	ErrAborted          = errors.New("aborted")
	ErrNotAuthenticated = errors.New("não autenticado")
)

// CLI wires the session, API client, and list view into the
// user-facing commands. One instance per invocation.
type CLI struct {
	out      io.Writer
	in       *bufio.Reader
	client   *api.Client
	sess     *session.Store
	view     *listview.View
	renderer *listview.Renderer

	// RedirectDelay is the pause between the create-success
	// notification and showing the list, so the confirmation is
	// readable. Tests shorten it.
	RedirectDelay time.Duration
}

func New(out io.Writer, in io.Reader, client *api.Client, sess *session.Store, view *listview.View, renderer *listview.Renderer) *CLI {
	return &CLI{
		out:           out,
		in:            bufio.NewReader(in),
		client:        client,
		sess:          sess,
		view:          view,
		renderer:      renderer,
		RedirectDelay: 2 * time.Second,
	}
}

// Login handles `login -e <email> -p <password>`.
func (c *CLI) Login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("e", "", "Email")
	password := fs.String("p", "", "Senha")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("uso: login -e <email> -p <senha>")
	}

	if err := c.sess.Login(ctx, *email, *password); err != nil {
		fmt.Fprintln(c.out, err.Error())
		return err
	}

	fmt.Fprintf(c.out, "Autenticado como %s\n", *email)
	return nil
}

// Logout handles `logout`. Logging out while already logged out is a
// no-op and still succeeds.
func (c *CLI) Logout(_ context.Context, _ []string) error {
	if err := c.sess.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Sessão encerrada.")
	return nil
}

// Whoami handles `whoami`.
func (c *CLI) Whoami(_ context.Context, _ []string) error {
	cur, err := c.sess.Current()
	if err != nil {
		return err
	}
	if !cur.IsAuthenticated {
		fmt.Fprintln(c.out, "Não autenticado")
		return nil
	}
	fmt.Fprintf(c.out, "Autenticado como %s\n", cur.User.Email)
	return nil
}

// List handles `list [-t <tipo>] [-s <status>]`. "all" (or omitting
// the flag) drops that filter and the server returns everything.
func (c *CLI) List(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	typeFilter := fs.String("t", "all", "Filtrar por tipo")
	statusFilter := fs.String("s", "all", "Filtrar por status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := models.Filters{}
	if f := strings.ToUpper(*typeFilter); f != "ALL" {
		if !models.IsValidServiceType(f) {
			return fmt.Errorf("tipo desconhecido: %s (valores: %s)", *typeFilter, strings.Join(models.ServiceTypes, ", "))
		}
		filters.Type = f
	}
	if f := strings.ToUpper(*statusFilter); f != "ALL" {
		if !models.IsValidRequestStatus(f) {
			return fmt.Errorf("status desconhecido: %s (valores: %s)", *statusFilter, strings.Join(models.RequestStatuses, ", "))
		}
		filters.Status = f
	}

	if err := c.view.SetFilters(ctx, filters); err != nil {
		fmt.Fprintln(c.out, "Erro ao carregar solicitações")
		return err
	}

	return c.renderList()
}

// Create handles `create -t <tipo> --address ... --description ...
// --name ... --document ... [--doc-type cpf|cnpj]`. Validation runs
// before any network call; on success the list is shown after a short
// delay so the confirmation stays readable.
func (c *CLI) Create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	f := &form.Form{}
	fs.StringVar(&f.Type, "t", "", "Tipo da solicitação")
	fs.StringVar(&f.Address, "address", "", "Endereço")
	fs.StringVar(&f.Description, "description", "", "Descrição detalhada")
	fs.StringVar(&f.RequesterName, "name", "", "Nome do solicitante")
	fs.StringVar(&f.Document, "document", "", "CPF ou CNPJ")
	docType := fs.String("doc-type", "", "Tipo do documento (cpf ou cnpj)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch strings.ToLower(*docType) {
	case "":
	case "cpf":
		f.DocumentType = document.CPF
	case "cnpj":
		f.DocumentType = document.CNPJ
	default:
		return fmt.Errorf("tipo de documento desconhecido: %s", *docType)
	}
	f.Type = strings.ToUpper(f.Type)

	_, err := f.Submit(ctx, c.client)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			fields := make([]string, 0, len(verr.Fields))
			for field := range verr.Fields {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(c.out, "%s: %s\n", field, verr.Fields[field])
			}
			return err
		}
		fmt.Fprintln(c.out, "Erro ao criar solicitação.")
		return err
	}

	fmt.Fprintln(c.out, "Solicitação criada com sucesso!")
	time.Sleep(c.RedirectDelay)

	if err := c.view.Refresh(ctx); err != nil {
		fmt.Fprintln(c.out, "Erro ao carregar solicitações")
		return err
	}
	return c.renderList()
}

// Status handles `status <id> <novo-status>`. The current status is
// offered but refused, matching the disabled menu entry in the UI.
func (c *CLI) Status(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("uso: status <id> <PENDING|IN_PROGRESS|COMPLETED>")
	}

	cur, err := c.sess.Current()
	if err != nil {
		return err
	}
	if !cur.IsAuthenticated {
		fmt.Fprintln(c.out, "Faça login para alterar o status.")
		return ErrNotAuthenticated
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	newStatus := strings.ToUpper(args[1])
	if !models.IsValidRequestStatus(newStatus) {
		return fmt.Errorf("status desconhecido: %s (valores: %s)", args[1], strings.Join(models.RequestStatuses, ", "))
	}

	if err := c.view.Refresh(ctx); err != nil {
		fmt.Fprintln(c.out, "Erro ao carregar solicitações")
		return err
	}
	req, ok := c.view.Find(id)
	if !ok {
		return fmt.Errorf("solicitação %d não encontrada", id)
	}
	if req.Status == newStatus {
		fmt.Fprintln(c.out, "A solicitação já está neste status.")
		return nil
	}

	if err := c.view.UpdateStatus(ctx, id, newStatus); err != nil {
		fmt.Fprintln(c.out, "Erro ao atualizar status")
		return err
	}

	return c.renderList()
}

// Delete handles `delete <id> [-y]`. Only pending requests are
// deletable, and a confirmation is required unless -y is given.
func (c *CLI) Delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.Bool("y", false, "Excluir sem confirmação")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("uso: delete <id> [-y]")
	}

	cur, err := c.sess.Current()
	if err != nil {
		return err
	}
	if !cur.IsAuthenticated {
		fmt.Fprintln(c.out, "Faça login para excluir solicitações.")
		return ErrNotAuthenticated
	}

	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("id inválido: %s", fs.Arg(0))
	}

	if err := c.view.Refresh(ctx); err != nil {
		fmt.Fprintln(c.out, "Erro ao carregar solicitações")
		return err
	}
	req, ok := c.view.Find(id)
	if !ok {
		return fmt.Errorf("solicitação %d não encontrada", id)
	}
	if req.Status != models.StatusPending {
		fmt.Fprintln(c.out, "Apenas solicitações pendentes podem ser excluídas.")
		return ErrAborted
	}

	if !*yes {
		fmt.Fprint(c.out, "Tem certeza que deseja excluir esta solicitação? [s/N] ")
		answer, _ := c.in.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "s" && answer != "sim" {
			fmt.Fprintln(c.out, "Cancelado.")
			return ErrAborted
		}
	}

	if err := c.view.Delete(ctx, id); err != nil {
		fmt.Fprintln(c.out, "Erro ao excluir solicitação")
		return err
	}

	fmt.Fprintln(c.out, "Solicitação excluída com sucesso!")
	return c.renderList()
}

func (c *CLI) renderList() error {
	cur, err := c.sess.Current()
	if err != nil {
		return err
	}
	c.renderer.Render(c.view.Requests(), cur.IsAuthenticated)
	return nil
}
