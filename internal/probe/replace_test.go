package probe

import (
	"testing"
)

func TestParseReplaceStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ReplaceStatus
		wantErr bool
	}{
		{
			name: "never started",
			in:   "Never started\n",
			want: ReplaceStatus{State: ReplaceNeverStarted},
		},
		{
			name: "running",
			in:   "37.5% done, 0 write errs, 0 uncorr. read errs\n",
			want: ReplaceStatus{State: ReplaceStarted, ProgressPermille: 375},
		},
		{
			name: "running with errors",
			in:   "99.9% done, 3 write errs, 12 uncorr. read errs\n",
			want: ReplaceStatus{
				State:                   ReplaceStarted,
				ProgressPermille:        999,
				WriteErrors:             3,
				UncorrectableReadErrors: 12,
			},
		},
		{
			name: "zero progress",
			in:   "0.0% done, 0 write errs, 0 uncorr. read errs",
			want: ReplaceStatus{State: ReplaceStarted},
		},
		{
			name: "finished",
			in:   "Started on 25.Aug 10:04:56, finished on 25.Aug 11:10:32, 0 write errs, 0 uncorr. read errs\n",
			want: ReplaceStatus{State: ReplaceFinished},
		},
		{
			name: "canceled",
			in:   "Started on 25.Aug 10:04:56, canceled on 25.Aug 10:30:00 at 12.3%, 1 write errs, 0 uncorr. read errs\n",
			want: ReplaceStatus{State: ReplaceCanceled, WriteErrors: 1},
		},
		{
			name: "suspended",
			in:   "Started on 25.Aug 10:04:56, suspended on 25.Aug 10:30:00 at 12.3%, 0 write errs, 2 uncorr. read errs\n",
			want: ReplaceStatus{State: ReplaceSuspended, UncorrectableReadErrors: 2},
		},
		{
			name:    "garbage",
			in:      "something else entirely",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReplaceStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseReplaceStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("parseReplaceStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUsedBytes(t *testing.T) {
	rows := []SpaceRow{
		{Kind: "Data", Profile: "single", TotalBytes: 8 << 30, UsedBytes: 3 << 30},
		{Kind: "Metadata", Profile: "DUP", TotalBytes: 1 << 30, UsedBytes: 1 << 20},
		{Kind: "System", Profile: "DUP", TotalBytes: 8 << 20, UsedBytes: 16 << 10},
	}
	want := uint64(3<<30 + 1<<20 + 16<<10)
	if got := UsedBytes(rows); got != want {
		t.Errorf("UsedBytes() = %d, want %d", got, want)
	}
	if got := UsedBytes(nil); got != 0 {
		t.Errorf("UsedBytes(nil) = %d, want 0", got)
	}
}
