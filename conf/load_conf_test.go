package conf

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Config struct {
	DebugLevel int      `json:"debug_level"`
	Kind       string   `json:"kind"`
	Strict     bool     `json:"strict"`
	Inputs     []string `json:"inputs"`
}

func Test_getEnv(t *testing.T) {
	tests := []struct {
		name   []string
		expect string
	}{
		{},
		{
			name:   []string{"name1", "name2", "name3"},
			expect: "name1name2name3",
		},
		{
			name:   []string{"name1"},
			expect: "name1",
		},
	}

	for _, test := range tests {
		for _, n := range test.name {
			t.Setenv(n, n)
		}
		actual := getEnv(test.name)
		assert.EqualValues(t, test.expect, actual)
	}
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	tests := []struct {
		app         string
		homeEnvName string
		homeValue   string
		expectErr   error
		expectDir   string
	}{
		{
			homeEnvName: "FLUENTPARSE_TEST_NOHOME",
			expectErr:   ErrHomeNotFound,
		},
		{
			app:         "app",
			homeEnvName: "FLUENTPARSE_TEST_HOME",
			homeValue:   home,
			expectDir:   home + "/.app",
		},
	}

	for _, test := range tests {
		tmp := homeEnvNames
		homeEnvNames = [][]string{{test.homeEnvName}}
		t.Setenv(test.homeEnvName, test.homeValue)
		actualDir, actualErr := GetConfigDir(test.app)
		assert.EqualValues(t, test.expectErr, actualErr)
		assert.EqualValues(t, test.expectDir, actualDir)
		homeEnvNames = tmp
	}
	assert.DirExists(t, filepath.Join(home, ".app"))
}

func TestInitFlagSet(t *testing.T) {
	home := t.TempDir()
	tmp := homeEnvNames
	defer func() { homeEnvNames = tmp }()
	homeEnvNames = [][]string{{"FLUENTPARSE_TEST_HOME"}}
	t.Setenv("FLUENTPARSE_TEST_HOME", home)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	InitFlagSet(fs, "f", "app", "app.conf")
	assert.Equal(t, home+"/.app/app.conf", ConfName())

	require.NoError(t, fs.Parse([]string{"-f", "other.conf"}))
	assert.Equal(t, "other.conf", ConfName())
}

func TestLoadEx(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		content string
		conf    *Config
		expect  *Config
		err     bool
	}{
		{
			content: `{
"debug_level": 1, # 日志级别
"kind": "long",
"inputs": ["#1","2"]
}`,
			conf:   &Config{},
			expect: &Config{DebugLevel: 1, Kind: "long", Inputs: []string{"#1", "2"}},
		},
		{
			content: `{
"debug_level": "1",
"strict": true
}`,
			conf: &Config{},
			err:  true,
		},
	}

	for i, test := range tests {
		name := filepath.Join(dir, "TestLoadEx")
		require.NoError(t, os.WriteFile(name, []byte(test.content), 0600))
		err := LoadEx(test.conf, name)
		if test.err {
			assert.Error(t, err, "case %d", i)
			continue
		}
		assert.NoError(t, err, "case %d", i)
		assert.Equal(t, test.expect, test.conf)
	}

	err := LoadEx(&Config{}, "")
	assert.EqualError(t, err, "open : no such file or directory")
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "TestLoad")
	require.NoError(t, os.WriteFile(name, []byte(`{"kind": "char", "strict": true}`), 0600))
	tmp := confName
	defer func() { confName = tmp }()
	confName = &name

	conf := &Config{}
	assert.NoError(t, Load(conf))
	assert.Equal(t, &Config{Kind: "char", Strict: true}, conf)
}

func Test_trimComments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		data   []byte
		expect []byte
	}{
		{
			data: []byte(`{
"kind": "int",
"debug_level": 1
}`),
			expect: []byte(`{
"kind": "int",
"debug_level": 1
}`),
		},
		{
			data: []byte(`# header
{"kind": "int"} # trailing
`),
			expect: []byte("\n{\"kind\": \"int\"} \n"),
		},
	}

	for _, test := range tests {
		actual := trimComments(test.data)
		assert.EqualValues(t, test.expect, actual)
	}
}

func Test_trimCommentsLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line   []byte
		expect []byte
	}{
		{
			line:   []byte(`"kind": "int" # kind`),
			expect: []byte(`"kind": "int" `),
		},
		{
			line:   []byte(`"sep": "#"`),
			expect: []byte(`"sep": "#"`),
		},
		{
			line:   []byte(`"q": "a\"#b" #c`),
			expect: []byte(`"q": "a\"#b" `),
		},
	}

	for _, test := range tests {
		actual := trimCommentsLine(test.line)
		assert.EqualValues(t, test.expect, actual)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	name := filepath.Join(t.TempDir(), "TestLoadFile")
	conf := &Config{}
	err := os.WriteFile(name, []byte(`{
"debug_level": 1,
"inputs": ["conf1","conf2"]
}`), 0755)
	assert.Nil(t, err)
	err = LoadFile(conf, name)
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"conf1", "conf2"}, conf.Inputs)
	assert.EqualValues(t, 1, conf.DebugLevel)
}
