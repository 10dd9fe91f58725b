package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/qiniu/x/log"

	config "github.com/fluentparsing/fluentparsing/conf"
	"github.com/fluentparsing/fluentparsing/convert"
)

const (
	Version = "v1.0.0"

	KeyDebugLevel = "debug_level"
	KeyKind       = "kind"
	KeyStrict     = "strict"
	KeyJSON       = "json"
)

const (
	exitOK = iota
	exitConvertFailed
	exitUsage
)

// Config of fluentparse
type Config struct {
	DebugLevel int32
	Kind       convert.Kind
	Strict     bool
	JSON       bool
}

// Result 是 -json 模式下每个参数对应的一行输出
type Result struct {
	Text  string      `json:"text"`
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
	Error string      `json:"error,omitempty"`
}

// flag 名与配置项的对应关系，命令行参数覆盖配置文件
var flagKeys = map[string]string{
	"debug":  KeyDebugLevel,
	"kind":   KeyKind,
	"strict": KeyStrict,
	"json":   KeyJSON,
}

func newConfig(mc config.MapConf) (cfg Config, err error) {
	if cfg.DebugLevel, err = mc.GetIntOr(KeyDebugLevel, log.Linfo); err != nil && hasKey(mc, KeyDebugLevel) {
		return
	}
	if cfg.Kind, err = mc.GetKindOr(KeyKind, convert.Double); err != nil && hasKey(mc, KeyKind) {
		return
	}
	if cfg.Strict, err = mc.GetBoolOr(KeyStrict, false); err != nil && hasKey(mc, KeyStrict) {
		return
	}
	if cfg.JSON, err = mc.GetBoolOr(KeyJSON, false); err != nil && hasKey(mc, KeyJSON) {
		return
	}
	return cfg, nil
}

func hasKey(mc config.MapConf, key string) bool {
	_, ok := mc[key]
	return ok
}

func loadConfig(fs *flag.FlagSet, args []string) (cfg Config, texts []string, err error) {
	config.InitFlagSet(fs, "f", "fluentparse", "fluentparse.conf")
	fs.Int("debug", log.Linfo, "log output level")
	fs.String("kind", convert.Double.String(), "target kind: decimal, double, int, char, long, float")
	fs.Bool("strict", false, "report a failed conversion instead of printing the zero value")
	fs.Bool("json", false, "print one json object per input")
	if err = fs.Parse(args); err != nil {
		return
	}

	mc := config.MapConf{}
	if err = config.LoadFile(&mc, config.ConfName()); err != nil {
		if !os.IsNotExist(err) {
			return
		}
		log.Debugf("config file %v not found, use defaults", config.ConfName())
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			mc[key] = f.Value.String()
		}
	})
	cfg, err = newConfig(mc)
	return cfg, fs.Args(), err
}

var jsontool = jsoniter.ConfigCompatibleWithStandardLibrary

func nonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// displayValue NaN 与 ±Inf 无法编码为 json 数字，按字符串输出
func displayValue(kind convert.Kind, v interface{}) interface{} {
	switch val := v.(type) {
	case float64:
		if nonFinite(val) {
			return strconv.FormatFloat(val, 'g', -1, 64)
		}
	case float32:
		if nonFinite(float64(val)) {
			return strconv.FormatFloat(float64(val), 'g', -1, 32)
		}
	}
	if kind == convert.Char {
		return string(v.(rune))
	}
	return v
}

// plainValue 与 displayValue 相同，但 char 零值输出为空行
func plainValue(kind convert.Kind, v interface{}) interface{} {
	if kind == convert.Char && v.(rune) == 0 {
		return ""
	}
	return displayValue(kind, v)
}

func convertAll(cfg Config, texts []string, stdout, stderr io.Writer) (failed int) {
	for _, text := range texts {
		v, err := convert.Convert(text, cfg.Kind, cfg.Strict)
		log.Debugf("convert %q to %v: value %v, error %v", text, cfg.Kind, v, err)
		if err != nil {
			failed++
		}
		if cfg.JSON {
			res := Result{Text: text, Kind: cfg.Kind.String(), Value: displayValue(cfg.Kind, v)}
			if err != nil {
				res.Error = err.Error()
			}
			line, merr := jsontool.Marshal(res)
			if merr != nil {
				log.Errorf("encode result of %q error %v", text, merr)
				fmt.Fprintf(stderr, "encode result of %q error %v\n", text, merr)
				if err == nil {
					failed++
				}
				continue
			}
			stdout.Write(append(line, '\n'))
			continue
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		fmt.Fprintln(stdout, plainValue(cfg.Kind, v))
	}
	return
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fluentparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "fluentparse %v\n\nUsage: fluentparse [flags] text...\n", Version)
		fs.PrintDefaults()
	}
	cfg, texts, err := loadConfig(fs, args)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}
	log.SetOutputLevel(int(cfg.DebugLevel))
	log.Debugf("fluentparse %v, config: %#v", Version, cfg)
	if len(texts) == 0 {
		fs.Usage()
		return exitUsage
	}
	if failed := convertAll(cfg, texts, stdout, stderr); failed > 0 {
		log.Debugf("%d of %d inputs failed to convert to %v", failed, len(texts), cfg.Kind)
		return exitConvertFailed
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
