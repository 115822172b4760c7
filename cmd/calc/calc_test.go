package calc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/statcalc/statcalc/pkg/client"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalcCmds(t *testing.T) {
	ctrl := gomock.NewController(t)

	tcs := []struct {
		name       string
		cmd        func(*client.MockClient) *cobra.Command
		args       []string
		expect     func(*client.MockClient)
		wantStdout string
		wantStderr string
	}{
		{
			name: "Mean",
			cmd: func(c *client.MockClient) *cobra.Command {
				return DescriptiveCmd("mean", "", "Mean", c.Mean)
			},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Mean(gomock.Any()).Return(1234.5, nil)
			},
			wantStdout: "Mean: 1,234.5\n",
		},
		{
			name: "StandardDeviation",
			cmd: func(c *client.MockClient) *cobra.Command {
				return DescriptiveCmd("sd", "", "Std Dev", c.StandardDeviation)
			},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().StandardDeviation(gomock.Any()).Return(2.0, nil)
			},
			wantStdout: "Std Dev: 2\n",
		},
		{
			name: "ModeSingle",
			cmd:  func(c *client.MockClient) *cobra.Command { return ModeCmd(c) },
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Mode(gomock.Any()).Return(&client.Mode{Result: 4, Modes: []float64{4}}, nil)
			},
			wantStdout: "Mode: 4\n",
		},
		{
			name: "ModeTies",
			cmd:  func(c *client.MockClient) *cobra.Command { return ModeCmd(c) },
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Mode(gomock.Any()).Return(&client.Mode{Result: 1, Modes: []float64{1, 2}}, nil)
			},
			wantStdout: "Mode: 1\nModes: [1 2]\n",
		},
		{
			name: "NCr",
			cmd:  func(c *client.MockClient) *cobra.Command { return CombinatoricsCmds(c)[0] },
			args: []string{"5", "2"},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().NCr(gomock.Any(), int64(5), int64(2)).Return(10.0, nil)
			},
			wantStdout: "nCr(5, 2) = 10\n",
		},
		{
			name: "NPr",
			cmd:  func(c *client.MockClient) *cobra.Command { return CombinatoricsCmds(c)[1] },
			args: []string{"5", "2"},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().NPr(gomock.Any(), int64(5), int64(2)).Return(20.0, nil)
			},
			wantStdout: "nPr(5, 2) = 20\n",
		},
		{
			name:       "NCrMissingArgs",
			cmd:        func(c *client.MockClient) *cobra.Command { return CombinatoricsCmds(c)[0] },
			args:       []string{"5"},
			expect:     func(*client.MockClient) {},
			wantStderr: "Error: must specify n and r\n",
		},
		{
			name:       "NPrNotAnInteger",
			cmd:        func(c *client.MockClient) *cobra.Command { return CombinatoricsCmds(c)[1] },
			args:       []string{"5", "2.5"},
			expect:     func(*client.MockClient) {},
			wantStderr: "Error: r must be an integer, got \"2.5\"\n",
		},
		{
			name: "Binomial",
			cmd:  func(c *client.MockClient) *cobra.Command { return BinomialCmd(c) },
			args: []string{"10", "0", "0.5"},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Binomial(gomock.Any(), int64(10), int64(0), 0.5).Return(0.0009765625, nil)
			},
			wantStdout: "Binomial(n=10, k=0, p=0.5) = 0.000976\n",
		},
		{
			name: "Event",
			cmd:  func(c *client.MockClient) *cobra.Command { return EventCmd(c) },
			args: []string{"union", "--pa", "0.5", "--pb", "0.2"},
			expect: func(mock *client.MockClient) {
				pa, pb := 0.5, 0.2
				mock.EXPECT().EventOp(gomock.Any(), &client.EventOpRequest{Op: "union", PA: &pa, PB: &pb}).Return(&client.EventOutcome{Label: "P(AuB)", Result: 0.6}, nil)
			},
			wantStdout: "P(AuB) = 0.6\n",
		},
		{
			name: "EventUnresolved",
			cmd:  func(c *client.MockClient) *cobra.Command { return EventCmd(c) },
			args: []string{"inter", "--pa", "0.5"},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().EventOp(gomock.Any(), gomock.Any()).Return(nil, &client.Error{
					StatusCode: 400,
					Message:    "Bad Request",
					Details:    []string{"P(A) and P(B) could not be resolved from the given probabilities"},
				})
			},
			wantStderr: "Error: 400 Bad Request: P(A) and P(B) could not be resolved from the given probabilities\n",
		},
		{
			name:       "EventInvalidFlag",
			cmd:        func(c *client.MockClient) *cobra.Command { return EventCmd(c) },
			args:       []string{"union", "--pa", "half"},
			expect:     func(*client.MockClient) {},
			wantStderr: "Error: --pa must be a number, got \"half\"\n",
		},
		{
			name: "ServerDown",
			cmd: func(c *client.MockClient) *cobra.Command {
				return DescriptiveCmd("median", "", "Median", c.Median)
			},
			expect: func(mock *client.MockClient) {
				mock.EXPECT().Median(gomock.Any()).Return(0.0, errors.New("connection refused"))
			},
			wantStderr: "Error: connection refused\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			mock := client.NewMockClient(ctrl)
			tc.expect(mock)

			cmd := tc.cmd(mock)
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)
			cmd.SetArgs(append([]string{}, tc.args...))

			if err := cmd.Execute(); err != nil {
				assert.Equal(t, tc.wantStderr, stderr.String())
			} else {
				assert.Empty(t, tc.wantStderr)
				assert.Equal(t, tc.wantStdout, stdout.String())
			}
		})
	}
}
