package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Telegram struct {
		Token           string
		AdminIDs        []int64 `mapstructure:"admin_ids"`
		ForwardToAdmins bool    `mapstructure:"forward_to_admins"`
		PollTimeoutSec  int     `mapstructure:"poll_timeout_sec"`
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Storage struct {
		Backend string
		File    struct {
			ManagersPath string `mapstructure:"managers_path"`
			TextsPath    string `mapstructure:"texts_path"`
		} `mapstructure:"file"`
		Postgres struct {
			DSN string
		} `mapstructure:"postgres"`
	} `mapstructure:"storage"`

	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	} `mapstructure:"smtp"`

	Flow struct {
		MainMenu             bool  `mapstructure:"main_menu"`
		CommentStep          bool  `mapstructure:"comment_step"`
		AddressStep          bool  `mapstructure:"address_step"`
		TwoStageProof        bool  `mapstructure:"two_stage_proof"`
		MaxAttachmentMB      int64 `mapstructure:"max_attachment_mb"`
		MaxTotalAttachmentMB int64 `mapstructure:"max_total_attachment_mb"`
	} `mapstructure:"flow"`

	Catalogs struct {
		Fresco                  []string `mapstructure:"fresco"`
		FrescoMaterials         []string `mapstructure:"fresco_materials"`
		Designer                []string `mapstructure:"designer"`
		DesignerPanelSizes      []string `mapstructure:"designer_panel_sizes"`
		Background              []string `mapstructure:"background"`
		BackgroundMaterials     []string `mapstructure:"background_materials"`
		BackgroundHeightsVelour []int    `mapstructure:"background_heights_velour"`
		BackgroundHeightsColore []int    `mapstructure:"background_heights_colore"`
		DeliveryCarriers        []string `mapstructure:"delivery_carriers"`
		DefaultCity             string   `mapstructure:"default_city"`
	} `mapstructure:"catalogs"`
}

func Load(path string) (Config, error) {
	// .env рядом с бинарём, если есть.
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	// Переменные старых развёртываний без префикса APP_.
	if c.Telegram.Token == "" {
		c.Telegram.Token = os.Getenv("BOT_TOKEN")
	}
	if raw := os.Getenv("ADMIN_IDS"); raw != "" && len(c.Telegram.AdminIDs) == 0 {
		ids, err := parseAdminIDs(raw)
		if err != nil {
			return c, err
		}
		c.Telegram.AdminIDs = ids
	}
	if raw := os.Getenv("FORWARD_TO_ADMINS"); raw != "" {
		c.Telegram.ForwardToAdmins = parseBool(raw)
	}

	if err := validate(c); err != nil {
		return c, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")

	v.SetDefault("telegram.forward_to_admins", true)
	v.SetDefault("telegram.poll_timeout_sec", 30)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.file.managers_path", "data/managers.json")
	v.SetDefault("storage.file.texts_path", "data/texts.json")

	v.SetDefault("smtp.port", 587)

	v.SetDefault("flow.main_menu", false)
	v.SetDefault("flow.comment_step", false)
	v.SetDefault("flow.address_step", false)
	v.SetDefault("flow.two_stage_proof", false)
	v.SetDefault("flow.max_attachment_mb", 20)
	v.SetDefault("flow.max_total_attachment_mb", 50)

	v.SetDefault("catalogs.fresco", []string{
		"Fine Art", "New Art", "Trend Art", "Fantasy", "Atmosphere", "Exclusive",
	})
	v.SetDefault("catalogs.fresco_materials", []string{
		"Велюр", "Сатин", "Саванна", "Безе", "Велатура",
		"Саббия", "Саббия Фасад", "Пиетра", "Кракелюр",
		"Фабриз X", "Фабриз Y", "Колоре", "Колоре Лайт",
	})
	v.SetDefault("catalogs.designer", []string{
		"Labirint", "Wallpaper I", "Wallpaper II", "Wallpaper III",
		"Favorite Art", "Line Art", "Emotion Art", "Fantasy", "Fluid",
		"Rio", "Atmosphere", "Exclusive", "Сказки Affresco", "Fine Art",
		"Trend Art", "New Art", "Re-Space", "Art Fabric",
	})
	v.SetDefault("catalogs.designer_panel_sizes", []string{
		"10.0 x 20.0", "12.0 x 20", "15.0 x 30.0",
	})
	v.SetDefault("catalogs.background", []string{
		"Dream Forest", "Exclusive", "Affresco Colore", "Botanika", "Ethno",
	})
	v.SetDefault("catalogs.background_materials", []string{"Велюр", "Колоре"})
	v.SetDefault("catalogs.background_heights_velour", []int{200, 220, 240, 260, 280, 300, 315})
	v.SetDefault("catalogs.background_heights_colore", []int{220, 240, 260, 280, 300})
	v.SetDefault("catalogs.delivery_carriers", []string{
		"Деловые Линии", "ПЭК", "СДЭК", "Байкал Сервис", "Самовывоз",
	})
	v.SetDefault("catalogs.default_city", "Нижний Новгород")
}

func validate(c Config) error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required (or BOT_TOKEN env)")
	}
	switch c.Storage.Backend {
	case "file":
	case "postgres":
		if c.Storage.Postgres.DSN == "" {
			return fmt.Errorf("storage.postgres.dsn is required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_IDS %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
