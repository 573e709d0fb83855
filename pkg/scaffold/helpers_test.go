package scaffold

import (
	"bytes"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mkadlec/spinup/pkg/exec"
)

func testParams(name string) BuildParams {
	return BuildParams{
		Name:           name,
		ParentDir:      ".",
		PackageManager: PackageManagerYarn,
		Template:       TemplateRedux,
	}
}

func testRunContext(executor exec.CommandExecutor, params BuildParams, dir string) *RunContext {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &RunContext{
		Params:   params,
		Config:   DefaultConfig(),
		Executor: executor,
		Dir:      dir,
		Out:      &bytes.Buffer{},
		Log:      log,
	}
}
