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

package levenspielutil

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cast"

	"github.com/reactormodel/levenspiel"
	"github.com/reactormodel/levenspiel/render"
)

// ServerConfig holds the web interface configuration. It can be filled in
// from a TOML file.
type ServerConfig struct {
	// Address is the host and port the server listens on.
	Address string

	// RateLaw identifies the reaction kinetics the form starts with.
	RateLaw string

	// RateConstant is the rate constant the form starts with.
	RateConstant float64

	// FeedConcentration is the feed concentration the form starts
	// with [mol/L].
	FeedConcentration float64

	// X1, X2, and X3 are the exit conversions the form starts with.
	X1, X2, X3 float64

	// Reactor1, Reactor2, and Reactor3 are the reactor types the form
	// starts with: CSTR or PFR.
	Reactor1, Reactor2, Reactor3 string
}

// DefaultServerConfig returns the configuration the web interface starts
// with when no other values are given.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:7171",
		RateLaw:           levenspiel.LangmuirHinshelwood,
		RateConstant:      0.5,
		FeedConcentration: 1,
		X1:                0.4,
		X2:                0.8,
		X3:                0.9,
		Reactor1:          "CSTR",
		Reactor2:          "CSTR",
		Reactor3:          "CSTR",
	}
}

// query returns the form values of the configuration, for carrying the
// effective train through to the diagram request.
func (c *ServerConfig) query() url.Values {
	v := url.Values{}
	v.Set("RateLaw", c.RateLaw)
	v.Set("RateConstant", fmt.Sprintf("%g", c.RateConstant))
	v.Set("FeedConcentration", fmt.Sprintf("%g", c.FeedConcentration))
	v.Set("X1", fmt.Sprintf("%g", c.X1))
	v.Set("X2", fmt.Sprintf("%g", c.X2))
	v.Set("X3", fmt.Sprintf("%g", c.X3))
	v.Set("Reactor1", c.Reactor1)
	v.Set("Reactor2", c.Reactor2)
	v.Set("Reactor3", c.Reactor3)
	return v
}

// train converts the configuration to a reactor train.
func (c *ServerConfig) train() (*levenspiel.Train, error) {
	types, err := parseReactorTypes([3]string{c.Reactor1, c.Reactor2, c.Reactor3})
	if err != nil {
		return nil, err
	}
	return &levenspiel.Train{
		RateLaw:     c.RateLaw,
		K:           c.RateConstant,
		CA0:         c.FeedConcentration,
		Checkpoints: [3]float64{c.X1, c.X2, c.X3},
		Types:       types,
	}, nil
}

// Server serves the interactive Levenspiel diagram: a form for the train
// configuration, the sizing report, and the rendered diagram.
type Server struct {
	config *ServerConfig
	tmpl   *template.Template

	Log logrus.FieldLogger
}

// NewServer creates a new Server with configuration c.
func NewServer(c *ServerConfig) (*Server, error) {
	tmpl, err := template.New("index").Parse(indexTmpl)
	if err != nil {
		return nil, fmt.Errorf("levenspiel: parsing page template: %v", err)
	}
	return &Server{
		config: c,
		tmpl:   tmpl,
		Log:    logrus.StandardLogger(),
	}, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Log.WithFields(logrus.Fields{
		"url":  r.URL.String(),
		"addr": r.RemoteAddr,
	}).Info("levenspiel request")
	switch r.URL.Path {
	case "/":
		s.handleIndex(w, r)
	case "/plot.png":
		s.handlePlot(w, r)
	default:
		http.NotFound(w, r)
	}
}

// configFromQuery returns a copy of the server configuration with any
// values present in the query applied on top. The query keys match the
// configuration field names.
func (s *Server) configFromQuery(v url.Values) (*ServerConfig, error) {
	c := *s.config
	for name, field := range map[string]*string{
		"RateLaw":  &c.RateLaw,
		"Reactor1": &c.Reactor1,
		"Reactor2": &c.Reactor2,
		"Reactor3": &c.Reactor3,
	} {
		if q := v.Get(name); q != "" {
			*field = q
		}
	}
	for name, field := range map[string]*float64{
		"RateConstant":      &c.RateConstant,
		"FeedConcentration": &c.FeedConcentration,
		"X1":                &c.X1,
		"X2":                &c.X2,
		"X3":                &c.X3,
	} {
		if q := v.Get(name); q != "" {
			f, err := cast.ToFloat64E(q)
			if err != nil {
				return nil, fmt.Errorf("levenspiel: parsing %s: %v", name, err)
			}
			*field = f
		}
	}
	return &c, nil
}

type reactorRow struct {
	Reactor int
	Type    string
	Volume  string
}

type indexData struct {
	RateLaws []string
	Form     *ServerConfig
	Rows     []reactorRow
	Total    string

	// PlotQuery carries the sized train's form values through to the
	// diagram request.
	PlotQuery template.URL

	Error string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := &indexData{
		RateLaws: levenspiel.NewKinetics().Names(),
		Form:     s.config,
	}
	c, err := s.configFromQuery(r.URL.Query())
	if err == nil {
		data.Form = c
		var train *levenspiel.Train
		train, err = c.train()
		if err == nil {
			var res *levenspiel.Result
			res, err = train.Evaluate()
			if err == nil {
				for _, seg := range res.Segments {
					data.Rows = append(data.Rows, reactorRow{
						Reactor: seg.Reactor,
						Type:    seg.Type.String(),
						Volume:  fmt.Sprintf("%.3g", seg.Volume),
					})
				}
				data.Total = fmt.Sprintf("%.3g", res.Total)
				data.PlotQuery = template.URL(c.query().Encode())
			}
		}
	}
	if err != nil {
		// Redraw the form with the problem described instead of failing
		// the whole page.
		data.Error = err.Error()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	c, err := s.configFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	train, err := c.train()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := train.Evaluate()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.WritePNG(w, res, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// StartWebServer starts the web interface with its address, form
// defaults, and browser-opening behavior all taken from the global
// configuration. It reads the configuration file first, so it works on
// the bare-invocation path where no command ran.
func StartWebServer() error {
	if err := setConfig(); err != nil {
		return err
	}
	c := DefaultServerConfig()
	c.Address = Cfg.GetString("addr")
	c.RateLaw = Cfg.GetString("RateLaw")
	c.RateConstant = Cfg.GetFloat64("RateConstant")
	c.FeedConcentration = Cfg.GetFloat64("FeedConcentration")
	c.X1 = Cfg.GetFloat64("X1")
	c.X2 = Cfg.GetFloat64("X2")
	c.X3 = Cfg.GetFloat64("X3")
	c.Reactor1 = Cfg.GetString("Reactor1")
	c.Reactor2 = Cfg.GetString("Reactor2")
	c.Reactor3 = Cfg.GetString("Reactor3")

	s, err := NewServer(c)
	if err != nil {
		return err
	}
	log.Println("Loading front-end...")
	if Cfg.GetBool("open") {
		open.Run("http://" + c.Address)
	}
	fmt.Println("If not opened automatically, please visit http://" + c.Address)
	return http.ListenAndServe(c.Address, s)
}

const indexTmpl = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Levenspiel</title>
	<style>
		html, body { padding: 0; margin: 2% 0; font-family: sans-serif; }
		.container { max-width: 700px; margin: 0 auto; padding: 10px; }
		form { margin-bottom: 1em; }
		label { display: inline-block; margin: .2em 1em .2em 0; }
		input { font-family: monospace; width: 6em; }
		table { border-collapse: collapse; }
		td, th { border: 1px solid #bbb; padding: .3em .8em; text-align: left; }
		.error { color: #c35; }
	</style>
</head>
<body>
<div class="container">
	<h1>Levenspiel</h1>
	<p>Configure the reactor train below.</p>
	<form action="/" method="get">
		<label>Rate law
			<select name="RateLaw">
				{{range .RateLaws}}<option{{if eq . $.Form.RateLaw}} selected{{end}}>{{.}}</option>{{end}}
			</select>
		</label>
		<label>k <input type="number" step="any" name="RateConstant" value="{{.Form.RateConstant}}"></label>
		<label>cA0 [mol/L] <input type="number" step="any" name="FeedConcentration" value="{{.Form.FeedConcentration}}"></label>
		<br>
		<label>X1 <input type="number" step="any" name="X1" value="{{.Form.X1}}"></label>
		<label>X2 <input type="number" step="any" name="X2" value="{{.Form.X2}}"></label>
		<label>X3 <input type="number" step="any" name="X3" value="{{.Form.X3}}"></label>
		<br>
		<label>Reactor 1
			<select name="Reactor1">
				<option{{if eq .Form.Reactor1 "CSTR"}} selected{{end}}>CSTR</option>
				<option{{if eq .Form.Reactor1 "PFR"}} selected{{end}}>PFR</option>
			</select>
		</label>
		<label>Reactor 2
			<select name="Reactor2">
				<option{{if eq .Form.Reactor2 "CSTR"}} selected{{end}}>CSTR</option>
				<option{{if eq .Form.Reactor2 "PFR"}} selected{{end}}>PFR</option>
			</select>
		</label>
		<label>Reactor 3
			<select name="Reactor3">
				<option{{if eq .Form.Reactor3 "CSTR"}} selected{{end}}>CSTR</option>
				<option{{if eq .Form.Reactor3 "PFR"}} selected{{end}}>PFR</option>
			</select>
		</label>
		<br>
		<button type="submit">Size the train</button>
	</form>
	{{if .Error}}
	<p class="error">{{.Error}}</p>
	{{else}}
	<table>
		<tr><th>Reactor</th><th>Type</th><th>Volume [L]</th></tr>
		{{range .Rows}}<tr><td>{{.Reactor}}</td><td>{{.Type}}</td><td>{{.Volume}}</td></tr>
		{{end}}<tr><td>Total</td><td></td><td>{{.Total}}</td></tr>
	</table>
	<p><img src="/plot.png?{{.PlotQuery}}" alt="Levenspiel diagram"></p>
	{{end}}
	<footer>
		© 2026 Levenspiel Authors
	</footer>
</div>
</body>
</html>`
