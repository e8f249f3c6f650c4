package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/discedge/io"
	"github.com/phil-mansfield/discedge/migrate"
	"github.com/phil-mansfield/discedge/nbody"
	"github.com/phil-mansfield/discedge/stats"
)

// Number of progress lines logged over the course of a run.
const progressLines = 20

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var run, exampleConfig string
	vars := map[string]*string{
		"Run":           &run,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&run, "Run", "",
		"Configuration file for [Run] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Run' and "+
			"'Particles'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Run":
		wrap, err := io.ReadRunConfig(run)
		if err != nil {
			log.Fatal(err.Error())
		}
		runMain(wrap)
	case "ExampleConfig":
		switch exampleConfig {
		case "Run":
			fmt.Println(io.ExampleRunFile)
		case "Particles":
			fmt.Println(io.ExampleParticlesFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Run' and 'Particles'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but discedge "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func runMain(wrap *io.RunWrapper) {
	con := &wrap.Run

	fg := &FileGroup{}
	defer fg.Close()

	var err error
	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	log.Println("Running Run main.")

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	ps, ts, err := io.ReadParticles(con.Particles)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d particles from '%s'.", len(ps), con.Particles)

	cfg, err := wrap.InnerDiscEdge.Migrate()
	if err != nil {
		log.Fatal(err.Error())
	}

	var col *stats.Collector
	if con.ValidMetricsFile() {
		col, err = stats.NewCollector(nil)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	sim := nbody.NewSimulation(con.G, con.Dt, ps)
	effect, err := migrate.New(cfg, len(ps), col)
	if err != nil {
		log.Fatal(err.Error())
	}
	for i := range ts {
		if err := effect.SetTimescales(i, ts[i]); err != nil {
			log.Fatal(err.Error())
		}
		if ts[i].TauA.IsSet() && cfg.Edge == nil {
			log.Printf(
				"Particle %d sets tau_a, but no inner disc edge is "+
					"configured, so semimajor axis damping is off.", i,
			)
		}
	}
	sim.Add(effect)
	log.Printf(
		"Added effect '%s' in %v coordinates.", effect.Name(), cfg.Coordinates,
	)

	f, err := os.Create(con.Output)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer f.Close()
	sw := io.NewSnapshotWriter(f)
	history := &io.History{}

	e0 := sim.Energy()
	progressEvery := con.Steps / progressLines
	if progressEvery == 0 {
		progressEvery = 1
	}

	step := -1
	snap := func(sim *nbody.Simulation) error {
		step++
		if step > 0 {
			col.ObserveStep(sim.T)
			if step%progressEvery == 0 {
				log.Printf(
					"Step %d/%d, t = %g, dE/E = %.3g.",
					step, con.Steps, sim.T, (sim.Energy()-e0)/e0,
				)
			}
		}

		if step%con.SnapshotEvery != 0 && step != con.Steps {
			return nil
		}
		if err := sw.Write(sim); err != nil {
			return err
		}
		if con.ValidPlot() {
			history.Append(sim)
		}
		return nil
	}

	if err := sim.Integrate(con.Steps, 1, snap); err != nil {
		log.Fatal(err.Error())
	}
	if err := sw.Flush(); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote snapshots to '%s'.", con.Output)

	if con.ValidPlot() {
		if err := io.PlotHistory(con.Plot, history, cfg.Edge); err != nil {
			log.Fatal(err.Error())
		}
		plt.Execute()
		log.Printf("Wrote plot to '%s'.", con.Plot)
	}

	if con.ValidMetricsFile() {
		if err := col.WriteTextfile(con.MetricsFile); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote run counters to '%s'.", con.MetricsFile)
	}
}
