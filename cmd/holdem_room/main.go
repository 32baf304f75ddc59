package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/roboholdem/roboholdem/holdem"
	"github.com/roboholdem/roboholdem/holdem/abstracts"
	"github.com/roboholdem/roboholdem/holdem/results"
	"github.com/roboholdem/roboholdem/holdem/robot"
	"github.com/roboholdem/roboholdem/metrics"
	"github.com/urfave/cli"
)

const (
	SessionCountFName = "s_count"
	SessionLevelFName = "s_level"
	PortFName         = "port"
	MetricsPortFName  = "metrics_port"
	MongoHostsFName   = "mongo"
	MongoDBFName      = "mongo_db"
	MistyFName        = "misty"
	SeedFName         = "seed"
)

func main() {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: SessionCountFName, Value: 10},
		cli.IntFlag{Name: SessionLevelFName, Value: 1},
		cli.IntFlag{Name: PortFName, Value: 3030},
		cli.IntFlag{Name: MetricsPortFName, Value: 9110},
		cli.StringFlag{Name: MongoHostsFName, Value: "localhost"},
		cli.StringFlag{Name: MongoDBFName, Value: "roboholdem"},
		// misty机器人的地址，留空则不接硬件
		cli.StringFlag{Name: MistyFName, Value: ""},
		// 0则用当前时间做seed
		cli.Int64Flag{Name: SeedFName, Value: 0},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		panic(err)
	}
}

func run(c *cli.Context) {
	seed := c.Int64(SeedFName)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var notifier abstracts.RobotNotifier = robotNotifier(c.String(MistyFName))

	db := results.NewResultsDBByMongo(strings.Split(c.String(MongoHostsFName), ","), c.String(MongoDBFName))

	metrics.Serve(c.Int(MetricsPortFName))

	server := holdem.NewSessionServer(c.Int(SessionCountFName), c.Int(SessionLevelFName), c.Int(PortFName), db, notifier, seed)
	if err := server.Start(); err != nil {
		panic(err)
	}
	signalListen(func() {
		if err := server.Stop(); err != nil {
			panic(err)
		}
		time.Sleep(1 * time.Second)
	})
}

func robotNotifier(mistyAddr string) abstracts.RobotNotifier {
	if mistyAddr == "" {
		return robot.NewNoop()
	}
	return robot.NewMisty(mistyAddr)
}

// listen stop signal
func signalListen(stopFunc func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGKILL)
	<-c

	stopFunc()
}
