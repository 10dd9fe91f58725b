package conf

import (
	"bytes"
	"errors"
	"flag"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/qiniu/x/log"
)

var (
	confName *string
	NL       = []byte{'\n'}
	ANT      = []byte{'#'}
)

var homeEnvNames = [][]string{
	{"HOME"},
	{"HOMEDRIVE", "HOMEPATH"},
}

var ErrHomeNotFound = errors.New("$HOME not found")

var jsontool = jsoniter.ConfigCompatibleWithStandardLibrary

func getEnv(name []string) (v string) {
	if len(name) == 1 {
		return os.Getenv(name[0])
	}
	for _, k := range name {
		v += os.Getenv(k)
	}
	return
}

func GetConfigDir(app string) (dir string, err error) {
	for _, name := range homeEnvNames {
		home := getEnv(name)
		if home == "" {
			continue
		}
		dir = home + "/." + app
		err = os.MkdirAll(dir, 0700)
		return
	}
	return "", ErrHomeNotFound
}

// Init 注册 -cflag 参数，默认指向 $HOME/.app/defaultConf
func Init(cflag, app, defaultConf string) {
	InitFlagSet(flag.CommandLine, cflag, app, defaultConf)
}

func InitFlagSet(fs *flag.FlagSet, cflag, app, defaultConf string) {
	confDir, _ := GetConfigDir(app)
	confName = fs.String(cflag, confDir+"/"+defaultConf, "the config file")
}

func ConfName() string {
	if confName != nil {
		return *confName
	}
	return ""
}

func Load(conf interface{}) (err error) {
	if !flag.Parsed() {
		flag.Parse()
	}

	log.Info("Use the config file of ", ConfName())
	return LoadEx(conf, ConfName())
}

func trimComments(data []byte) (data1 []byte) {
	conflines := bytes.Split(data, NL)
	for k, line := range conflines {
		conflines[k] = trimCommentsLine(line)
	}
	return bytes.Join(conflines, NL)
}

// trimCommentsLine 去掉引号外 # 之后的内容
func trimCommentsLine(line []byte) []byte {
	var newLine []byte
	var i, quoteCount int
	lastIdx := len(line) - 1
	for i = 0; i <= lastIdx; i++ {
		if line[i] == '\\' {
			if i != lastIdx && (line[i+1] == '\\' || line[i+1] == '"') {
				newLine = append(newLine, line[i], line[i+1])
				i++
				continue
			}
		}
		if line[i] == '"' {
			quoteCount++
		}
		if line[i] == ANT[0] && quoteCount%2 == 0 {
			break
		}
		newLine = append(newLine, line[i])
	}
	return newLine
}

func LoadEx(conf interface{}, confName string) (err error) {
	data, err := os.ReadFile(confName)
	if err != nil {
		log.Error("Load conf failed:", err)
		return
	}
	if err = LoadData(conf, data); err != nil {
		log.Error("Parse conf failed:", err)
	}
	return
}

func LoadFile(conf interface{}, confName string) (err error) {
	data, err := os.ReadFile(confName)
	if err != nil {
		return
	}
	return LoadData(conf, data)
}

func LoadData(conf interface{}, data []byte) (err error) {
	return jsontool.Unmarshal(trimComments(data), conf)
}
