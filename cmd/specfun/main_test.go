// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-special/internal/catalog"
	"github.com/ajroetker/go-special/special"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SPECFUN_FORMAT", "text")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "powmod", "2", "10", "1000"}, "24\n"},
		{[]string{"eval", "mulmod", "3000000000", "3000000000", "1000000007"}, "441\n"},
		{[]string{"eval", "xlogy", "0", "0"}, "0\n"},
		{[]string{"eval", "sinc", "0"}, "1\n"},
		{[]string{"eval", "logit", "1"}, "+Inf\n"},
		{[]string{"eval", "log1pexp", "-1000"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalNegativeArgument(t *testing.T) {
	out, err := run(t, "eval", "log1mexp", "-50")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "-1.9287498479639"), out)

	out, err = run(t, "--format", "json", "eval", "xlog1py", "0", "-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"function":"xlog1py","args":["0","-1"],"value":0}`, out)
}

func TestEvalFormatFromEnvironment(t *testing.T) {
	var out bytes.Buffer
	t.Setenv("SPECFUN_FORMAT", "yaml")

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"eval", "powmod", "2", "10", "1000"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "value: 24")
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "gamma", "1")
	assert.ErrorIs(t, err, catalog.ErrUnknownFunction)

	_, err = run(t, "eval", "powmod", "2", "10")
	assert.ErrorIs(t, err, catalog.ErrArity)

	_, err = run(t, "eval", "mulmod", "2", "3", "0")
	assert.ErrorIs(t, err, catalog.ErrDomain)

	_, err = run(t, "--format", "xml", "eval", "sinc", "0")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, e := range catalog.Entries() {
		assert.Contains(t, out, e.ID)
	}
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "expit", "--from=-1", "--to=1", "--steps=3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"0", "0.5"}, strings.Fields(lines[2]))

	out, err = run(t, "--format", "json", "table", "xlogy", "--from=0", "--to=2", "--steps=3", "--y=1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"function":"xlogy","fixed":["y=1"],"rows":[
		{"x":0,"value":0},{"x":1,"value":0},{"x":2,"value":0}]}`, out)
}

func TestTableErrors(t *testing.T) {
	_, err := run(t, "table", "powmod")
	assert.ErrorIs(t, err, catalog.ErrKind)

	_, err = run(t, "table", "xlogy")
	assert.ErrorIs(t, err, catalog.ErrArity)

	_, err = run(t, "table", "sinc", "--steps=0")
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "mulmod kernel: "+special.Kernel().Name)
}
