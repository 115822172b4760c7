package history

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/pkg/client"
	"github.com/statcalc/statcalc/pkg/history"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHistoryCmds(t *testing.T) {
	ctrl := gomock.NewController(t)

	tcs := []struct {
		name       string
		cmd        func(client.Client) *cobra.Command
		args       []string
		expect     func(*client.MockClient)
		wantStdout string
	}{
		{
			name: "ListEmpty",
			cmd:  ListCmd,
			expect: func(mock *client.MockClient) {
				mock.EXPECT().History(gomock.Any()).Return([]history.Entry{}, nil)
			},
			wantStdout: "History is empty\n",
		},
		{
			name: "ListJson",
			cmd:  ListCmd,
			args: []string{"--output", "json"},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().History(gomock.Any()).Return([]history.Entry{{Op: "Mean", Res: 2.5}}, nil)
			},
			wantStdout: "[{\"op\":\"Mean\",\"res\":2.5}]\n",
		},
		{
			name: "Undo",
			cmd:  UndoCmd,
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Undo(gomock.Any()).Return(nil)
			},
			wantStdout: "Undo applied\n",
		},
		{
			name: "Redo",
			cmd:  RedoCmd,
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Redo(gomock.Any()).Return(nil)
			},
			wantStdout: "Redo applied\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}

			mock := client.NewMockClient(ctrl)
			tc.expect(mock)

			cmd := tc.cmd(mock)
			cmd.SetOut(stdout)
			cmd.SetArgs(append([]string{}, tc.args...))

			assert.NoError(t, cmd.Execute())
			assert.Equal(t, tc.wantStdout, stdout.String())
		})
	}
}

func TestListTable(t *testing.T) {
	ctrl := gomock.NewController(t)

	mock := client.NewMockClient(ctrl)
	mock.EXPECT().History(gomock.Any()).Return([]history.Entry{
		{Op: "Mean", Res: 5},
		{Op: "P(AuB)", Res: 0.6},
	}, nil)

	stdout := &bytes.Buffer{}
	cmd := ListCmd(mock)
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})

	assert.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "Mean")
	assert.Contains(t, out, "P(AuB)")
	assert.Contains(t, out, "0.6")
}
