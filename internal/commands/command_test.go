package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/tabdo/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"edit 2 call the bank", TypeEdit},
		{"done 1", TypeDone},
		{"rm #3", TypeDelete},
		{"tab travel", TypeTab},
		{"/work", TypeTab},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("edit 2 call the bank")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Edit.Row != 2 || cmd.Edit.Text != "call the bank" {
		t.Fatalf("unexpected edit args: %+v", cmd.Edit)
	}

	cmd, err = Parse("rm #3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Delete == nil || cmd.Delete.Row != 3 || cmd.Done != nil {
		t.Fatalf("unexpected delete args: %+v", cmd)
	}

	cmd, err = Parse("tab Travel")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Tab.Category != model.CategoryTravel {
		t.Fatalf("unexpected tab: %s", cmd.Tab.Category)
	}
}

func TestParseKeepsTextSpacing(t *testing.T) {
	cmd, err := Parse("add  pack   2  bags ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "pack   2  bags" {
		t.Fatalf("add text changed: %q", cmd.Add.Text)
	}

	cmd, err = Parse("/edit #1 a  b\tc")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Edit.Row != 1 || cmd.Edit.Text != "a  b\tc" {
		t.Fatalf("edit text changed: %+v", cmd.Edit)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	for _, in := range []string{"add", "add   ", "done", "done zero", "done 0", "edit 1", "tab home", "rm 1 2"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	var ce *CommandError
	if _, err := Parse("  / "); !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
		t.Fatalf("expected empty input error, got %v", err)
	}
	if _, err := Parse("/unknown do x"); !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("done 1")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
