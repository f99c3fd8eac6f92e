package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_CodeAndUnwrap(t *testing.T) {
	base := &Error{Code: ErrCodeRenameFailed, Path: "/d/a.raf", Dst: "/d/b.raf", Err: os.ErrPermission}
	wrapped := fmt.Errorf("run: %w", base)

	assert.Equal(t, ErrCodeRenameFailed, Code(wrapped))
	assert.True(t, errors.Is(wrapped, os.ErrPermission))
	assert.Contains(t, base.Error(), "/d/b.raf")

	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Code: ErrCodeCountMismatch, RawCount: 3, JPGCount: 2}, "3 vs. 2"},
		{&Error{Code: ErrCodeTargetExists, Path: "/d/a.raf", Dst: "/d/Lake.raf"}, `"/d/Lake.raf"`},
		{&Error{Code: ErrCodeDirUnreadable, Path: "/nope", Err: os.ErrNotExist}, `"/nope"`},
		{&Error{Code: "other"}, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.want)
			assert.Contains(t, tt.err.Error(), tt.err.Code)
		})
	}
}
