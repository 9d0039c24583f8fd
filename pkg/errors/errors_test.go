// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "clobber_error",
			code:    errors.ErrClobber,
			message: "destination exists",
			wantStr: "[CLOBBER] destination exists",
		},
		{
			name:    "os_link_error",
			code:    errors.ErrOsLink,
			message: "hard link failed",
			wantStr: "[OS_LINK] hard link failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("Code = %v, want %v", err.Code, tt.code)
			}
			if err.Error() != tt.wantStr {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrFileAccess, "failed to read file")

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match with errors.Is")
	}
	if errors.GetErrorCode(err) != errors.ErrFileAccess {
		t.Errorf("GetErrorCode = %v, want %v", errors.GetErrorCode(err), errors.ErrFileAccess)
	}
}

func TestWrapNil(t *testing.T) {
	if errors.Wrap(nil, errors.ErrInternal, "should be nil") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrClobber, "destination %q already exists", "/env/bin/tool")

	if !errors.IsErrorCode(err, errors.ErrClobber) {
		t.Error("IsErrorCode should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrOsLink) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrClobber) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestNewClobberError(t *testing.T) {
	err := errors.NewClobberError("/env/bin/tool", "/pkgs/tool-1.0/bin/tool", types.LinkTypeHardLink)

	if !errors.IsErrorCode(err, errors.ErrClobber) {
		t.Fatalf("GetErrorCode = %v, want %v", errors.GetErrorCode(err), errors.ErrClobber)
	}
	details := errors.GetErrorDetails(err)
	if details["destination"] != "/env/bin/tool" {
		t.Errorf("destination detail = %v", details["destination"])
	}
	if details["source"] != "/pkgs/tool-1.0/bin/tool" {
		t.Errorf("source detail = %v", details["source"])
	}
	if details["link_type"] != "hardlink" {
		t.Errorf("link_type detail = %v", details["link_type"])
	}
}
