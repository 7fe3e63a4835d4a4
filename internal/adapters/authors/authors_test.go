package authors_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskrun/internal/adapters/authors"
	"go.trai.ch/taskrun/internal/core/domain"
	"go.trai.ch/taskrun/internal/core/ports"
	"go.trai.ch/taskrun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func authorsTask(dest string) domain.TaskDefinition {
	return domain.TaskDefinition{
		Name:    "authors",
		Plugin:  domain.PluginAuthors,
		Options: domain.AuthorsOptions{Dest: dest},
	}
}

func TestWriter_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command, stdout io.Writer) error {
			assert.Equal(t, "git", cmd.Args[0])
			assert.Contains(t, cmd.Args, "--reverse")
			_, err := io.WriteString(stdout, "Jane Doe <jane@example.com>\nJohn Roe <john@example.com>\n\nJane Doe <jane@example.com>\n")
			return err
		})

	dest := filepath.Join(t.TempDir(), "AUTHORS.txt")
	var out bytes.Buffer
	require.NoError(t, authors.NewWriter(executor).Run(context.Background(), authorsTask(dest), &out))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe <jane@example.com>\nJohn Roe <john@example.com>\n", string(data))
	assert.Contains(t, out.String(), "with 2 authors")
}

func TestWriter_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed)

	dest := filepath.Join(t.TempDir(), "AUTHORS.txt")
	err := authors.NewWriter(executor).Run(context.Background(), authorsTask(dest), &bytes.Buffer{})
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.NoFileExists(t, dest)
}
