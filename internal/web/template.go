package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/aymanmw1/streetlight/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"yesNo": func(b bool) string {
		if b {
			return "YES"
		}
		return "NO"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Street Light Controller</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.night { color: navy; font-weight: bold; }
.day { color: #b8860b; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>Street Light Controller</h1>

<h2>State</h2>
<table>
<tr><th>Ambient</th><td class="{{if .Frame.IsNight}}night{{else}}day{{end}}">{{if .Frame.IsNight}}NIGHT{{else}}DAY{{end}}</td></tr>
<tr><th>Motion</th><td>{{yesNo .Frame.Motion}}</td></tr>
<tr><th>Lamp</th><td class="{{if .Lamp.LampOn}}on{{else}}off{{end}}">{{if .Lamp.LampOn}}ON{{else}}OFF{{end}} ({{.Lamp.Level}})</td></tr>
</table>

<h2>Clock</h2>
<table>
<tr><th>Time</th><td>{{.Clock}}</td></tr>
<tr><th>Sunrise</th><td>{{.Sunrise.HHMM}}</td></tr>
<tr><th>Sunset</th><td>{{.Sunset.HHMM}}</td></tr>
<tr><th>Logger seeded</th><td>{{yesNo .Seeded}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
</table>

<h2>Event Counts</h2>
<table>
<tr><th>Sunrise</th><td>{{.Counts.Sunrise}}</td></tr>
<tr><th>Sunset</th><td>{{.Counts.Sunset}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Clock seed</th><td>{{.Config.Seed}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Tick</th><td>{{.Config.TickMs}}ms</td></tr>
<tr><th>Dwell</th><td>{{.Config.DwellMs}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
