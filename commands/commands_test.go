// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/urban-services/api"
	"github.com/danielhkuo/urban-services/form"
	"github.com/danielhkuo/urban-services/listview"
	"github.com/danielhkuo/urban-services/models"
	"github.com/danielhkuo/urban-services/session"
	"github.com/danielhkuo/urban-services/testutil"
)

// newTestCLI wires a CLI against the fake API with the given stdin.
func newTestCLI(t *testing.T, fake *testutil.FakeAPI, input string) (*CLI, *bytes.Buffer, *session.Store) {
	t.Helper()

	client := api.NewClient(fake.URL())
	sess := session.New(testutil.NewKV(t), client)
	if err := sess.Restore(); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	view := listview.New(client)
	var out bytes.Buffer
	renderer := &listview.Renderer{Out: &out}

	cli := New(&out, strings.NewReader(input), client, sess, view, renderer)
	cli.RedirectDelay = 0
	return cli, &out, sess
}

func loginCLI(t *testing.T, cli *CLI) {
	t.Helper()
	if err := cli.Login(context.Background(), []string{"-e", testutil.TestEmail, "-p", testutil.TestPassword}); err != nil {
		t.Fatalf("Login command error = %v", err)
	}
}

func TestLoginCommand(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, out, sess := newTestCLI(t, fake, "")

	loginCLI(t, cli)
	if !strings.Contains(out.String(), "Autenticado como "+testutil.TestEmail) {
		t.Errorf("login output = %q", out.String())
	}

	cur, _ := sess.Current()
	if !cur.IsAuthenticated {
		t.Error("session not authenticated after login command")
	}
}

func TestLoginCommandRejected(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, out, sess := newTestCLI(t, fake, "")

	err := cli.Login(context.Background(), []string{"-e", testutil.TestEmail, "-p", "wrong"})
	if !errors.Is(err, session.ErrAuthFailed) {
		t.Fatalf("error = %v, want ErrAuthFailed", err)
	}
	if !strings.Contains(out.String(), "Falha na autenticação") {
		t.Errorf("output = %q, want auth failure notification", out.String())
	}
	if cur, _ := sess.Current(); cur.IsAuthenticated {
		t.Error("rejected login authenticated the session")
	}
}

func TestLogoutAndWhoami(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, out, _ := newTestCLI(t, fake, "")

	loginCLI(t, cli)
	out.Reset()

	if err := cli.Whoami(context.Background(), nil); err != nil {
		t.Fatalf("Whoami error = %v", err)
	}
	if !strings.Contains(out.String(), testutil.TestEmail) {
		t.Errorf("whoami output = %q", out.String())
	}

	if err := cli.Logout(context.Background(), nil); err != nil {
		t.Fatalf("Logout error = %v", err)
	}
	// Twice: still fine
	if err := cli.Logout(context.Background(), nil); err != nil {
		t.Fatalf("second Logout error = %v", err)
	}

	out.Reset()
	if err := cli.Whoami(context.Background(), nil); err != nil {
		t.Fatalf("Whoami error = %v", err)
	}
	if !strings.Contains(out.String(), "Não autenticado") {
		t.Errorf("whoami output after logout = %q", out.String())
	}
}

func TestListCommand(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Seed(testutil.PendingRequest(1))
	done := testutil.PendingRequest(2)
	done.Status = models.StatusCompleted
	fake.Seed(done)

	cli, out, _ := newTestCLI(t, fake, "")

	if err := cli.List(context.Background(), []string{"-s", "completed"}); err != nil {
		t.Fatalf("List error = %v", err)
	}
	if !strings.Contains(out.String(), "#2") || strings.Contains(out.String(), "#1") {
		t.Errorf("filtered list output = %q", out.String())
	}

	// "all" drops the parameter and shows everything
	out.Reset()
	if err := cli.List(context.Background(), []string{"-s", "all"}); err != nil {
		t.Fatalf("List all error = %v", err)
	}
	if !strings.Contains(out.String(), "#1") || !strings.Contains(out.String(), "#2") {
		t.Errorf("unfiltered list output = %q", out.String())
	}
	lastQuery := fake.ListQueries[len(fake.ListQueries)-1]
	if _, has := lastQuery["status"]; has {
		t.Error("all sentinel still sent a status parameter")
	}
}

func TestListCommandRejectsUnknownFilter(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, _, _ := newTestCLI(t, fake, "")

	if err := cli.List(context.Background(), []string{"-t", "SNOW_REMOVAL"}); err == nil {
		t.Error("unknown type filter accepted")
	}
	if len(fake.ListQueries) != 0 {
		t.Error("invalid filter still hit the server")
	}
}

func TestCreateCommand(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, out, _ := newTestCLI(t, fake, "")

	err := cli.Create(context.Background(), []string{
		"-t", "lamp_replacement",
		"--address", "Rua das Flores, 100",
		"--description", "Poste apagado",
		"--name", "João da Silva",
		"--document", "111.444.777-35",
	})
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	if !strings.Contains(out.String(), "Solicitação criada com sucesso!") {
		t.Errorf("missing success notification: %q", out.String())
	}
	// The list shown afterwards carries the new entry, masked
	if !strings.Contains(out.String(), "111.444.777-35") {
		t.Errorf("list after create missing formatted document: %q", out.String())
	}

	if len(fake.CreateBodies) != 1 {
		t.Fatalf("create calls = %d, want 1", len(fake.CreateBodies))
	}
	if fake.CreateBodies[0].Status != models.StatusPending {
		t.Errorf("wire status = %q, want PENDING", fake.CreateBodies[0].Status)
	}
	if fake.CreateBodies[0].Document != "11144477735" {
		t.Errorf("wire document = %q, want digits only", fake.CreateBodies[0].Document)
	}
}

func TestCreateCommandValidation(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, out, _ := newTestCLI(t, fake, "")

	err := cli.Create(context.Background(), []string{
		"-t", "LAMP_REPLACEMENT",
		"--address", "Rua A",
		"--description", "x",
		"--name", "Maria",
		"--document", "11144477736", // bad checksum
	})

	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if !strings.Contains(out.String(), "CPF ou CNPJ inválido.") {
		t.Errorf("output = %q, want inline document error", out.String())
	}
	if len(fake.CreateBodies) != 0 {
		t.Error("invalid form reached the network")
	}
}

func TestCreateCommandTypedDocumentError(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	cli, out, _ := newTestCLI(t, fake, "")

	err := cli.Create(context.Background(), []string{
		"-t", "LAMP_REPLACEMENT",
		"--address", "Rua A",
		"--description", "x",
		"--name", "Maria",
		"--document", "11144477735",
		"--doc-type", "cnpj",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(out.String(), "CNPJ inválido.") {
		t.Errorf("output = %q, want error naming CNPJ", out.String())
	}
}

func TestCreateCommandServerError(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.FailAll = true
	cli, out, _ := newTestCLI(t, fake, "")

	err := cli.Create(context.Background(), []string{
		"-t", "LAMP_REPLACEMENT",
		"--address", "Rua A",
		"--description", "x",
		"--name", "Maria",
		"--document", "111.444.777-35",
	})
	if err == nil {
		t.Fatal("expected server error")
	}
	if !strings.Contains(out.String(), "Erro ao criar solicitação.") {
		t.Errorf("output = %q, want retry-worthy notification", out.String())
	}
}

func TestStatusCommandRequiresLogin(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Seed(testutil.PendingRequest(1))
	cli, out, _ := newTestCLI(t, fake, "")

	if err := cli.Status(context.Background(), []string{"1", "IN_PROGRESS"}); err == nil {
		t.Error("unauthenticated status change accepted")
	}
	if !strings.Contains(out.String(), "Faça login") {
		t.Errorf("output = %q", out.String())
	}
}

func TestStatusCommand(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Seed(testutil.PendingRequest(1))
	cli, out, _ := newTestCLI(t, fake, "")
	loginCLI(t, cli)
	out.Reset()

	if err := cli.Status(context.Background(), []string{"1", "in_progress"}); err != nil {
		t.Fatalf("Status error = %v", err)
	}
	if got := fake.Requests()[0].Status; got != models.StatusInProgress {
		t.Errorf("server status = %q, want IN_PROGRESS", got)
	}
	if !strings.Contains(out.String(), "[Em andamento (atual)]") {
		t.Errorf("refreshed list output = %q", out.String())
	}

	// Transition to the current status is refused
	out.Reset()
	if err := cli.Status(context.Background(), []string{"1", "IN_PROGRESS"}); err != nil {
		t.Fatalf("Status same error = %v", err)
	}
	if !strings.Contains(out.String(), "A solicitação já está neste status.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestStatusCommandAnyTransition(t *testing.T) {
	// The client does not restrict transition order: completed back to
	// pending is allowed.
	fake := testutil.NewFakeAPI(t)
	done := testutil.PendingRequest(1)
	done.Status = models.StatusCompleted
	fake.Seed(done)

	cli, _, _ := newTestCLI(t, fake, "")
	loginCLI(t, cli)

	if err := cli.Status(context.Background(), []string{"1", "PENDING"}); err != nil {
		t.Fatalf("Status error = %v", err)
	}
	if got := fake.Requests()[0].Status; got != models.StatusPending {
		t.Errorf("server status = %q, want PENDING", got)
	}
}

func TestDeleteCommandRequiresLogin(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	fake.Seed(testutil.PendingRequest(1))
	cli, _, _ := newTestCLI(t, fake, "")

	if err := cli.Delete(context.Background(), []string{"-y", "1"}); err == nil {
		t.Error("unauthenticated delete accepted")
	}
	if len(fake.Requests()) != 1 {
		t.Error("unauthenticated delete reached the server")
	}
}

func TestDeleteCommandPendingOnly(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	done := testutil.PendingRequest(1)
	done.Status = models.StatusCompleted
	fake.Seed(done)

	cli, out, _ := newTestCLI(t, fake, "")
	loginCLI(t, cli)
	out.Reset()

	if err := cli.Delete(context.Background(), []string{"-y", "1"}); !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
	if !strings.Contains(out.String(), "Apenas solicitações pendentes") {
		t.Errorf("output = %q", out.String())
	}
	if len(fake.Requests()) != 1 {
		t.Error("non-pending request deleted")
	}
}

func TestDeleteCommandConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDeleted bool
	}{
		{"confirmed with s", "s\n", true},
		{"confirmed with sim", "sim\n", true},
		{"declined with n", "n\n", false},
		{"declined with empty line", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeAPI(t)
			fake.Seed(testutil.PendingRequest(1))

			cli, out, _ := newTestCLI(t, fake, tt.input)
			loginCLI(t, cli)
			out.Reset()

			err := cli.Delete(context.Background(), []string{"1"})
			if !strings.Contains(out.String(), "Tem certeza que deseja excluir esta solicitação?") {
				t.Errorf("confirmation prompt missing: %q", out.String())
			}

			if tt.wantDeleted {
				if err != nil {
					t.Fatalf("Delete error = %v", err)
				}
				if !strings.Contains(out.String(), "Solicitação excluída com sucesso!") {
					t.Errorf("output = %q", out.String())
				}
				if len(fake.Requests()) != 0 {
					t.Error("request survived confirmed delete")
				}
			} else {
				if !errors.Is(err, ErrAborted) {
					t.Fatalf("error = %v, want ErrAborted", err)
				}
				if len(fake.Requests()) != 1 {
					t.Error("request deleted despite declined confirmation")
				}
			}
		})
	}
}
