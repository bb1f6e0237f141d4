package blockdag

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	l "github.com/Qitmeer/phantom/log"
)

// Structure of blocks data
type TestBlocksData struct {
	Tag     string   `json:"tag"`
	Parents []string `json:"parents"`
}

// Test input and output structure
type TestInOutData struct {
	Input  string   `json:"in"`
	Output []string `json:"out"`
}

// Test input and output structure2
type TestInOutData2 struct {
	Input  string `json:"in"`
	Output int    `json:"out"`
}

// Structure of test data
type TestData struct {
	PH_Fig2Blocks   []TestBlocksData `json:"PH_fig2-blocks"`
	PH_Fig4Blocks   []TestBlocksData `json:"PH_fig4-blocks"`
	PH_GetFutureSet TestInOutData
	PH_GetPastSet   TestInOutData
	PH_GetAnticone  TestInOutData
	PH_OrderFig2    TestInOutData
	PH_OrderFig4    TestInOutData
	PH_GetLayer     TestInOutData
	PH_BlueScore    TestInOutData2
	PH_BluesFig2    TestInOutData2
	PH_BluesFig4    TestInOutData2
}

// Load some data that phantom test need,it can use to build the dag ;This is the
// raw input data.
func loadTestData(fileName string, testData *TestData) error {
	if len(fileName) == 0 {
		return fmt.Errorf("file name error")
	}

	var f *os.File
	var err error

	f, err = os.Open(fileName)
	if err != nil {
		return err
	}

	defer func() {
		cErr := f.Close()
		if err == nil {
			err = cErr
		}
	}()
	//
	err = json.NewDecoder(f).Decode(testData)
	return err
}

// DAG block data
type TestBlock struct {
	id        string
	creator   string
	parents   []string
	timeStamp int64
}

// Return the block id
func (tb *TestBlock) GetID() string {
	return tb.id
}

// Return the creator of block
func (tb *TestBlock) GetCreator() string {
	return tb.creator
}

// Get all parents list,the dag block has more than one parent
func (tb *TestBlock) GetParents() []string {
	return tb.parents
}

func (tb *TestBlock) GetTimestamp() int64 {
	return tb.timeStamp
}

func (tb *TestBlock) GetPayload() []byte {
	return nil
}

// This is the interface for Block DAG,can use to call public function.
var bd BlockDAG

var randTool *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// It contains all of test data. Convenient for you to use different input data
// and output data.
var testData *TestData

// This is the test data file name
var testDataFilePath string = "./testData.json"

var tbMap map[string]IBlock

func InitBlockDAG(dagType string, anticoneSize int, graph string) IBlockDAG {
	output := io.Writer(os.Stdout)
	glogger := l.NewGlogHandler(l.StreamHandler(output, l.TerminalFormat(false)))
	glogger.Verbosity(l.LvlError)
	l.Root().SetHandler(glogger)
	blockdaglogger := l.New(l.Ctx{"module": "blockdag"})
	UseLogger(blockdaglogger)

	testData = &TestData{}
	err := loadTestData(testDataFilePath, testData)
	if err != nil {
		return nil
	}
	var tbd []TestBlocksData
	if graph == "PH_fig2-blocks" {
		tbd = testData.PH_Fig2Blocks
	} else if graph == "PH_fig4-blocks" {
		tbd = testData.PH_Fig4Blocks
	} else {
		return nil
	}
	blen := len(tbd)
	if blen < 2 {
		return nil
	}

	bd = BlockDAG{}
	instance := bd.Init(dagType, anticoneSize)
	tbMap = map[string]IBlock{}
	for i := 0; i < blen; i++ {
		block := buildBlock(tbd[i].Tag, tbd[i].Parents)
		if i == 0 {
			tbMap[tbd[i].Tag] = bd.CreateGenesis(block)
			continue
		}
		ib, err := bd.AddBlock(block)
		if err != nil {
			fmt.Printf("Error:%s  %s\n", err, tbd[i].Tag)
			return nil
		}
		tbMap[tbd[i].Tag] = ib
	}

	return instance
}

func buildBlock(tag string, parents []string) *TestBlock {
	return &TestBlock{
		id:        tag,
		creator:   "test",
		parents:   parents,
		timeStamp: time.Now().Unix(),
	}
}

func getBlockTag(id uint) string {
	for k, v := range tbMap {
		if v.GetID() == id {
			return k
		}
	}
	return ""
}

func changeToIDList(list []string) []uint {
	length := len(list)
	if length == 0 {
		return nil
	}
	result := []uint{}
	for i := 0; i < length; i++ {
		result = append(result, tbMap[list[i]].GetID())
	}
	return result
}

func processResult(calRet interface{}, theory []uint) bool {

	var ret bool = true
	switch calRet.(type) {
	case []uint:
		result := calRet.([]uint)
		rLen := len(result)

		if rLen != len(theory) {
			ret = false
		}
		for i := 0; i < rLen; i++ {
			if result[i] != theory[i] {
				ret = false
				break
			}
		}
	case *IdSet:
		result := calRet.(*IdSet)
		okResult := NewIdSet()
		okResult.AddList(theory)
		if !result.IsEqual(okResult) {
			ret = false
		}
	}

	if ret {
		fmt.Println("Congratulations，The result of the function is completely correct！！！")
	} else {
		fmt.Println("Failed，The result of the operation of a function is incompatible with the expectation！！！")
	}
	return ret
}

func printBlockChainTag(list []uint) {
	var result string
	for i := 0; i < len(list); i++ {
		name := getBlockTag(list[i])
		if i == 0 {
			result += name
		} else {
			result += fmt.Sprintf("-->%s", name)
		}
	}
	fmt.Println(result)
}

func printBlockSetTag(set *IdSet) {
	var result string = "["
	isFirst := true
	for k := range set.GetMap() {
		name := getBlockTag(k)
		if isFirst {
			result += name
			isFirst = false
		} else {
			result += fmt.Sprintf(",%s", name)
		}

	}
	result += "]"
	fmt.Println(result)
}
