package main

import (
	"fmt"
	"os"

	"github.com/hubastard/scenebox/engine/core"
	glbackend "github.com/hubastard/scenebox/engine/gfx/gl"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/platform"
	"github.com/hubastard/scenebox/engine/scene"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "sandbox"
	app.Usage = "switch between small OpenGL demo scenes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML config file read over the defaults",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "window width (overrides the config)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "window height (overrides the config)",
		},
		cli.StringFlag{
			Name:  "scene, s",
			Usage: "open this scene instead of the menu",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable debug logging",
		},
		cli.BoolFlag{
			Name:  "no-debug-gl",
			Usage: "log graphics errors instead of panicking on them",
		},
		cli.BoolFlag{
			Name:  "hot-reload",
			Usage: "rebuild the open scene when a shader file changes",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "print the registered scenes in menu order",
			Action: listScenes,
		},
	}
	app.Action = runSandbox

	if err := app.Run(os.Args); err != nil {
		core.LogFatal("%v", err)
	}
}

// loadConfig merges the config file, then the command-line overrides.
func loadConfig(ctx *cli.Context) (core.Config, error) {
	cfg := core.DefaultConfig()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = core.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if w := ctx.GlobalInt("width"); w > 0 {
		cfg.Width = w
	}
	if h := ctx.GlobalInt("height"); h > 0 {
		cfg.Height = h
	}
	if ctx.GlobalBool("no-debug-gl") {
		cfg.DebugGL = false
	}
	if ctx.GlobalBool("hot-reload") {
		cfg.HotReload = true
	}
	if ctx.GlobalBool("v") {
		cfg.LogLevel = "debug"
	}
	if err := core.SetLogLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("%w: log_level: %v", core.ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func runSandbox(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newDevice := func(core.Window) (gpu.API, error) {
		dev, err := glbackend.NewDevice()
		if err != nil {
			return nil, err
		}
		core.LogInfo("OpenGL %s on %s (%s)", dev.Version(), dev.Renderer(), dev.Vendor())
		return dev, nil
	}
	return core.Run(&App{StartScene: ctx.GlobalString("scene")}, cfg, newWindow, newDevice)
}

func listScenes(ctx *cli.Context) error {
	menu := scene.NewMenu()
	registerScenes(menu, &sceneContext{})
	for i, name := range menu.Names() {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	return nil
}
