package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Qitmeer/phantom/core/blockdag"
	"github.com/Qitmeer/phantom/log"
	"github.com/Qitmeer/phantom/metrics"
	"github.com/Qitmeer/phantom/params"
	"github.com/davecgh/go-spew/spew"
	"github.com/deckarep/golang-set"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, _, err := LoadConfig()
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		if log.LogWrite() != nil {
			log.LogWrite().Close()
		}
	}()

	if err := dagSim(cfg); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// SimBlock is the block unit of the simulation.
type SimBlock struct {
	id        string
	creator   string
	parents   []string
	timestamp int64
}

func (sb *SimBlock) GetID() string {
	return sb.id
}

func (sb *SimBlock) GetCreator() string {
	return sb.creator
}

func (sb *SimBlock) GetParents() []string {
	return sb.parents
}

func (sb *SimBlock) GetTimestamp() int64 {
	return sb.timestamp
}

func (sb *SimBlock) GetPayload() []byte {
	return nil
}

// creator produces block data for the simulation. An honest creator builds
// on a snapshot of the current tips, an adversarial one extends only its
// own chain and ignores what everyone else produces.
type creator struct {
	name        string
	adversarial bool
	seq         int
	lastID      string
	rnd         *rand.Rand
}

func (c *creator) run(bd *blockdag.BlockDAG, blockCh chan<- *SimBlock, quit <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		var parents []string
		if c.adversarial && c.lastID != "" {
			parents = []string{c.lastID}
		} else {
			tips := bd.GetTipsList()
			if len(tips) > 1 && c.rnd.Intn(10) == 0 {
				// A creator with a partial view of the network
				// references only one of the tips.
				tips = []blockdag.IBlock{tips[c.rnd.Intn(len(tips))]}
			}
			for _, t := range tips {
				parents = append(parents, t.GetData().GetID())
			}
		}
		b := &SimBlock{
			id:        fmt.Sprintf("%s-%d", c.name, c.seq),
			creator:   c.name,
			parents:   parents,
			timestamp: time.Now().Unix(),
		}

		select {
		case blockCh <- b:
			c.seq++
			c.lastID = b.id
		case <-quit:
			return
		}
	}
}

func dagSim(cfg *Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	anticoneSize := cfg.Anticone
	if anticoneSize < 0 {
		anticoneSize = params.ActiveNetParams.AnticoneSize()
	}
	log.Info("Start the dag simulation", "network", params.ActiveNetParams.Name,
		"blocks", cfg.Blocks, "creators", cfg.Creators, "adversary", cfg.Adversary,
		"anticone", anticoneSize, "seed", seed)

	go metrics.CollectProcessMetrics(time.Second * 3)

	bd := &blockdag.BlockDAG{}
	bd.Init(cfg.DAGType, anticoneSize)

	// Track every accepted block through the notification callback.
	seen := mapset.NewSet()
	var accepted, blues int
	bd.Subscribe(func(n *blockdag.Notification) {
		if n.Type != blockdag.BlockAccepted {
			return
		}
		data, ok := n.Data.(*blockdag.BlockAcceptedNotifyData)
		if !ok {
			return
		}
		accepted++
		if data.Block.IsBlue() {
			blues++
		}
		seen.Add(data.Block.GetData().GetCreator())
	})

	start := time.Now()
	bd.CreateGenesis(&SimBlock{
		id:        "genesis",
		creator:   "genesis",
		timestamp: start.Unix(),
	})

	advSet := mapset.NewSet()
	advCount := int(float64(cfg.Creators) * cfg.Adversary)
	creators := make([]*creator, cfg.Creators)
	for i := range creators {
		name := fmt.Sprintf("creator-%d", i)
		if i < advCount {
			advSet.Add(name)
		}
		creators[i] = &creator{
			name:        name,
			adversarial: advSet.Contains(name),
			rnd:         rand.New(rand.NewSource(seed + int64(i))),
		}
	}

	// The block channel is unbuffered on purpose: a creator can not hand
	// over its next block before the previous one has been inserted, so
	// every parent it names is already in the dag.
	blockCh := make(chan *SimBlock)
	quit := make(chan struct{})
	wg := sync.WaitGroup{}
	for _, c := range creators {
		wg.Add(1)
		go c.run(bd, blockCh, quit, &wg)
	}

	for i := 0; i < cfg.Blocks; {
		b := <-blockCh
		_, err := bd.AddBlock(b)
		if err != nil {
			log.Error("Insert failed", "block", b.GetID(), "error", err)
			continue
		}
		i++
	}
	close(quit)
	wg.Wait()

	gs := bd.GetGraphState()
	log.Info("Simulation finished", "state", gs.String(), "accepted", accepted,
		"blues", blues, "distinct creators", seen.Cardinality(),
		"elapsed", time.Since(start))

	chain := bd.GetOrderedChain()
	log.Info("Consensus visible sequence", "blocks", len(chain))

	report := bd.DetectAttack(cfg.Threshold)
	log.Info("Attack detector", "detected", report.Detected,
		"ratio", fmt.Sprintf("%.4f", report.RedRatio), "severity", report.Severity)

	if cfg.Adversary > 0 {
		p := params.ActiveNetParams
		waitingTime := uint(10 * p.BlockDelay)
		antiPast := int(float64(waitingTime) * p.BlockRate)
		risk := blockdag.GetRisk(40, cfg.Adversary, p.BlockRate, p.BlockDelay,
			waitingTime, antiPast)
		log.Info("Confirmation risk of a fresh block", "alpha", cfg.Adversary,
			"risk", fmt.Sprintf("%.6f", risk))
	}

	if cfg.Export != "" {
		ds := bd.GetDAGStructure()
		log.Trace(fmt.Sprintf("%v", log.LogClosure(func() string {
			return spew.Sdump(ds)
		})))
		buf, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(cfg.Export, buf, 0644); err != nil {
			return err
		}
		log.Info("Exported dag structure", "file", cfg.Export,
			"nodes", len(ds.Nodes), "edges", len(ds.Edges))
	}
	return nil
}
