package docs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mf6dist/internal/logfields"
)

// TestModelName is the model name of the synthetic documentation example.
const TestModelName = "mymodel"

// WriteTestModel writes a minimal single-model simulation into dir: a 10x10
// one-layer grid with constant heads in two corner cells and budget printing
// enabled. It exists purely to produce console output for the documentation
// listings.
func WriteTestModel(dir string) error {
	slog.Info("Creating simple test model", logfields.Dir(dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create test model dir: %w", err)
	}

	files := map[string]string{
		"mfsim.nam": `BEGIN options
END options

BEGIN timing
  TDIS6 mymodel.tdis
END timing

BEGIN models
  GWF6 mymodel.nam mymodel
END models

BEGIN exchanges
END exchanges

BEGIN solutiongroup 1
  IMS6 mymodel.ims mymodel
END solutiongroup 1
`,
		"mymodel.tdis": `BEGIN options
  TIME_UNITS days
END options

BEGIN dimensions
  NPER 1
END dimensions

BEGIN perioddata
  1.0 1 1.0
END perioddata
`,
		"mymodel.ims": `BEGIN options
  PRINT_OPTION summary
END options
`,
		"mymodel.nam": `BEGIN options
  SAVE_FLOWS
END options

BEGIN packages
  DIS6 mymodel.dis dis
  IC6 mymodel.ic ic
  NPF6 mymodel.npf npf
  CHD6 mymodel.chd chd_0
  OC6 mymodel.oc oc
END packages
`,
		"mymodel.dis": `BEGIN options
END options

BEGIN dimensions
  NLAY 1
  NROW 10
  NCOL 10
END dimensions

BEGIN griddata
  DELR
    CONSTANT 1.0
  DELC
    CONSTANT 1.0
  TOP
    CONSTANT 1.0
  BOTM LAYERED
    CONSTANT 0.0
END griddata
`,
		"mymodel.ic": `BEGIN griddata
  STRT
    CONSTANT 0.0
END griddata
`,
		"mymodel.npf": `BEGIN options
  SAVE_SPECIFIC_DISCHARGE
END options

BEGIN griddata
  ICELLTYPE
    CONSTANT 0
  K
    CONSTANT 1.0
END griddata
`,
		"mymodel.chd": `BEGIN dimensions
  MAXBOUND 2
END dimensions

BEGIN period 1
  1 1 1 1.0
  1 10 10 0.0
END period 1
`,
		"mymodel.oc": `BEGIN options
END options

BEGIN period 1
  PRINT BUDGET ALL
END period 1
`,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
