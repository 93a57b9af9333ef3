// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commands implements the user-facing CLI operations.

# Commands

Each command is a method on CLI, created with its dependencies:

		cli := commands.New(os.Stdout, os.Stdin, client, sess, view, renderer)

	  - Login:  login -e <email> -p <senha>
	  - Logout: logout (idempotent)
	  - Whoami: whoami
	  - List:   list [-t <tipo>] [-s <status>] ("all" drops the filter)
	  - Create: create -t ... --address ... --description ... --name ...
	    --document ... [--doc-type cpf|cnpj]
	  - Status: status <id> <novo-status> (authenticated)
	  - Delete: delete <id> [-y] (authenticated, pending only, confirmed)

# Authorization Gating

Status and Delete refuse to run without an authenticated session, the
CLI equivalent of the web UI hiding those affordances. The server still
enforces authorization on its side; this gating only shapes what the
client offers.

# Notifications

Outcomes surface as pt-BR lines on the command's writer
("Solicitação criada com sucesso!", "Erro ao atualizar status", ...).
Failures leave the last-known-good list state alone and nothing
retries automatically.

After a successful create the confirmation is shown, the command
pauses briefly (RedirectDelay, 2s), and the refreshed list is printed.
*/
package commands
