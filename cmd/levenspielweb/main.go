/*
Copyright © 2026 the Levenspiel authors.
This file is part of Levenspiel.

Levenspiel is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Levenspiel is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Levenspiel.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command levenspielweb serves the interactive Levenspiel diagram without
// the command-line wrapper, configured by an optional TOML file.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/reactormodel/levenspiel/levenspielutil"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

var config = flag.String("config", "", "Path to the configuration file")

func main() {
	flag.Parse()

	c := levenspielutil.DefaultServerConfig()
	if *config != "" {
		if _, err := toml.DecodeFile(os.ExpandEnv(*config), c); err != nil {
			log.Fatal(err)
		}
	}

	logger.Info("setting up...")
	s, err := levenspielutil.NewServer(c)
	if err != nil {
		logger.WithError(err).Fatal("failed to create server")
	}
	s.Log = logger

	srv := &http.Server{
		Addr:              c.Address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	logger.Infof("listening on http://%s\n", c.Address)
	logger.Fatal(srv.ListenAndServe())
}
