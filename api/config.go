package api

import (
	"sync"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	BallotConfig
}

type StorageConfig struct {
	TableNameCodes      string
	TableNameVotes      string
	TableNamePositions  string
	TableNameCandidates string
	TableNameSessions   string
}

type ServerConfig struct {
	Port int
}

// BallotConfig paces the session state machine; values are milliseconds.
type BallotConfig struct {
	AdvanceDelayMS  int
	ExitDelayMS     int
	ReviewDelayMS   int
	CompleteDelayMS int
}

func (c BallotConfig) Delays() ballot.Delays {
	return ballot.Delays{
		Advance:  time.Duration(c.AdvanceDelayMS) * time.Millisecond,
		Exit:     time.Duration(c.ExitDelayMS) * time.Millisecond,
		Review:   time.Duration(c.ReviewDelayMS) * time.Millisecond,
		Complete: time.Duration(c.CompleteDelayMS) * time.Millisecond,
	}
}

var settingsOnce sync.Once

func ReadConfig() *Config {
	defaults := ballot.DefaultDelays()

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameCodes:      viper.GetString("storage.TableNameCodes"),
			TableNameVotes:      viper.GetString("storage.TableNameVotes"),
			TableNamePositions:  viper.GetString("storage.TableNamePositions"),
			TableNameCandidates: viper.GetString("storage.TableNameCandidates"),
			TableNameSessions:   viper.GetString("storage.TableNameSessions"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		BallotConfig: BallotConfig{
			AdvanceDelayMS:  getIntOrDefault("ballot.AdvanceDelayMS", int(defaults.Advance.Milliseconds())),
			ExitDelayMS:     getIntOrDefault("ballot.ExitDelayMS", int(defaults.Exit.Milliseconds())),
			ReviewDelayMS:   getIntOrDefault("ballot.ReviewDelayMS", int(defaults.Review.Milliseconds())),
			CompleteDelayMS: getIntOrDefault("ballot.CompleteDelayMS", int(defaults.Complete.Milliseconds())),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
