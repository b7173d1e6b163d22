package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/douhashi/issue-transfer/internal/github"
	"github.com/douhashi/issue-transfer/internal/paths"
)

const (
	// EnvPrefix は環境変数のプレフィックス
	EnvPrefix = "ISSUE_TRANSFER"

	// DefaultLabelColor はラベル新規作成時のデフォルトカラー
	DefaultLabelColor = "b60205"
	// DefaultLabelDescription はラベル新規作成時のデフォルト説明文
	DefaultLabelDescription = "Indicates the issue was transferred"

	configName = paths.AppName
	configType = "yaml"
)

var labelColorPattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

// Config はアプリケーション全体の設定。Load後は変更しない
type Config struct {
	GitHub   GitHubConfig   `mapstructure:"github"`
	Transfer TransferConfig `mapstructure:"transfer"`
	Label    LabelConfig    `mapstructure:"label"`
}

// GitHubConfig はGitHub API関連の設定
type GitHubConfig struct {
	Token        string `mapstructure:"token"`
	BaseURL      string `mapstructure:"base_url"`
	GraphQLURL   string `mapstructure:"graphql_url"`
	UseGHCommand bool   `mapstructure:"use_gh_command"` // trueの場合はトークンの代わりにghコマンドの認証を使う
	Hostname     string `mapstructure:"hostname"`       // ghコマンドで使うホスト名
}

// TransferConfig は転送対象の設定
type TransferConfig struct {
	Source      github.RepositoryRef `mapstructure:"source"`
	Target      github.RepositoryRef `mapstructure:"target"`
	ProjectID   string               `mapstructure:"project_id"`
	Status      string               `mapstructure:"status"`
	StatusField string               `mapstructure:"status_field"`
	// Issues が指定された場合はプロジェクトの検索を行わずにこの番号を使う
	Issues []int `mapstructure:"issues"`
	DryRun bool  `mapstructure:"dry_run"`
}

// LabelConfig は転送後に付与するラベルの設定
type LabelConfig struct {
	Name        string `mapstructure:"name"`
	Color       string `mapstructure:"color"`
	Description string `mapstructure:"description"`
}

// envKeys は環境変数から読み込む設定キー
var envKeys = []string{
	"github.base_url",
	"github.graphql_url",
	"github.use_gh_command",
	"github.hostname",
	"transfer.source",
	"transfer.target",
	"transfer.project_id",
	"transfer.status",
	"transfer.status_field",
	"transfer.dry_run",
	"label.name",
	"label.color",
	"label.description",
}

// flagKeys はCLIフラグ名と設定キーの対応
var flagKeys = map[string]string{
	"source":            "transfer.source",
	"target":            "transfer.target",
	"project":           "transfer.project_id",
	"status":            "transfer.status",
	"status-field":      "transfer.status_field",
	"issue":             "transfer.issues",
	"dry-run":           "transfer.dry_run",
	"label":             "label.name",
	"label-color":       "label.color",
	"label-description": "label.description",
	"graphql-url":       "github.graphql_url",
	"use-gh":            "github.use_gh_command",
}

// Load は設定ファイル・環境変数・CLIフラグから設定を読み込む
//
// 優先順位: フラグ > 環境変数 > 設定ファイル > デフォルト値
// configPathが空の場合は設定ディレクトリとカレントディレクトリから issue-transfer.yml を探す
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("label.color", DefaultLabelColor)
	v.SetDefault("label.description", DefaultLabelDescription)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// GITHUB_TOKENもサポート
	if err := v.BindEnv("github.token", EnvPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token env: %w", err)
	}
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	hook := mapstructure.ComposeDecodeHookFunc(
		repositoryRefHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(cfg, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Label.Color = normalizeColor(cfg.Label.Color)

	return cfg, nil
}

func readConfigFile(v *viper.Viper, configPath string) error {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("failed to access config file: %w", err)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	for _, dir := range paths.ConfigSearchPaths() {
		v.AddConfigPath(dir)
	}
	v.SetConfigName(configName)
	v.SetConfigType(configType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// repositoryRefHook は "owner/name" 文字列をRepositoryRefにデコードする
func repositoryRefHook() mapstructure.DecodeHookFuncType {
	refType := reflect.TypeOf(github.RepositoryRef{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != refType {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		if s == "" {
			return github.RepositoryRef{}, nil
		}
		return github.ParseRepositoryRef(s)
	}
}

func normalizeColor(color string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(color), "#"))
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if err := c.ValidateSource(); err != nil {
		return err
	}
	if c.Transfer.Target.IsZero() {
		return errors.New("target repository is required")
	}
	if c.Transfer.Source == c.Transfer.Target {
		return fmt.Errorf("source and target repository must differ: %s", c.Transfer.Source)
	}
	if c.Label.Name == "" {
		return errors.New("label name is required")
	}
	if !labelColorPattern.MatchString(c.Label.Color) {
		return fmt.Errorf("label color must be a 6-digit hex value: %q", c.Label.Color)
	}
	return nil
}

// ValidateSource は候補Issueの取得に必要な設定だけを検証する
func (c *Config) ValidateSource() error {
	if c.GitHub.Token == "" && !c.GitHub.UseGHCommand {
		return errors.New("GitHub token is required (set GITHUB_TOKEN or use_gh_command)")
	}
	if c.Transfer.Source.IsZero() {
		return errors.New("source repository is required")
	}
	if len(c.Transfer.Issues) == 0 && c.Transfer.ProjectID == "" {
		return errors.New("project ID is required when no issue numbers are given")
	}
	for _, n := range c.Transfer.Issues {
		if n <= 0 {
			return fmt.Errorf("invalid issue number: %d", n)
		}
	}
	return nil
}

// LabelDefinition は付与するラベルの定義を返す
func (c *Config) LabelDefinition() github.LabelDefinition {
	return github.LabelDefinition{
		Name:        c.Label.Name,
		Color:       c.Label.Color,
		Description: c.Label.Description,
	}
}
