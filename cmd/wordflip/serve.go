package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/pkg/browser"

	"github.com/hmatsuda/wordflip/internal/config"
	"github.com/hmatsuda/wordflip/internal/engine"
	engineopts "github.com/hmatsuda/wordflip/internal/engine/opts"
	"github.com/hmatsuda/wordflip/internal/picker"
)

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port       = fs.Int("p", 8080, "port")
		configPath = fs.String("config", "", "config file (default: search .wordflip.*)")
		open       = fs.Bool("open", false, "open the page in a browser")
	)
	_ = fs.Parse(args)

	engineSettings, _, err := resolveSettings(*configPath, func(*config.EngineConfig, *config.UIConfig) error { return nil })
	if err != nil {
		log.Fatal(err)
	}
	def := engineSettings.ToOptions()
	if err := engineopts.NormalizeAndValidate(&def); err != nil {
		log.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", *port)
	url := fmt.Sprintf("http://localhost:%d/", *port)
	if *open {
		go func() {
			time.Sleep(300 * time.Millisecond)
			_ = browser.OpenURL(url)
		}()
	}
	log.Printf("wordflip serve listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, serveHandler(def)))
}

// serveHandler builds the HTTP surface: an inline test page on / and the JSON
// API on /api/flip. def carries the config-resolved defaults; query params
// override per request.
func serveHandler(def engine.Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})
	mux.HandleFunc("/api/flip", apiFlip(def))
	return mux
}

func apiFlip(def engine.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		o, err := engineopts.ApplyWebQueryToOptions(def, q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := engineopts.NormalizeAndValidate(&o); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		line := q.Get("line")
		col := 1
		if raw := q.Get("col"); raw != "" {
			col, err = engineopts.ParseIntInRange(raw, "col", 1, math.MaxInt)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if err := engineopts.CheckLine(line, col, o); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// No terminal behind an HTTP request: auto degrades to first and
		// prompt is rejected outright.
		spec, err := engineopts.ParseSelect(q.Get("select"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var sel engine.Selector
		switch spec.Strategy {
		case "auto", "first":
			sel = picker.First()
		case "index":
			sel = picker.Fixed(spec.Index)
		default:
			http.Error(w, "select=prompt is not available over HTTP", http.StatusBadRequest)
			return
		}

		outcome, err := engine.Run(line, col, o, sel)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(outcome)
	}
}

const indexHTML = `<!doctype html>
<html><head><meta charset="utf-8"/><title>wordflip</title>
<style>
body{font:14px/1.45 system-ui, sans-serif; margin:20px;}
table{border-collapse:collapse;}
th,td{border:1px solid #ddd;padding:6px 8px;vertical-align:top;}
thead{background:#fafafa;}
code{font-family:ui-monospace, SFMono-Regular, Menlo, Consolas, monospace}
label{margin-right:12px}
input[type=text]{width:320px}
.small{color:#666}
.new{background:#eaffea}
</style></head><body>
<h2>wordflip</h2>
<form id="f">
<label>line: <input name="line" type="text" value="set true value"></label>
<label>col: <input name="col" type="text" size="4" value="6"></label>
<label>select:
<select name="select">
	<option>first</option>
	<option>auto</option>
	<option>1</option>
	<option>2</option>
	<option>3</option>
</select></label>
<label><input type="checkbox" name="case_mask" value="1" checked> case mask</label>
<label>extra pair: <input name="pair" type="text" placeholder="word=opposite"></label>
<button>Flip</button>
</form>
<p class="small">Tip: same params as the CLI. Example: <code>/api/flip?line=set+true+value&col=6</code></p>
<div id="out"></div>
<script>
const f=document.getElementById('f'), out=document.getElementById('out');
f.onsubmit=async (e)=>{
 e.preventDefault();
 const q=new URLSearchParams();
 for(const [k,v] of new FormData(f)){ if(v!=='') q.append(k,v); }
 if(!f.case_mask.checked) q.set('case_mask','0');
 const res=await fetch('/api/flip?'+q.toString());
 if(!res.ok){ out.innerHTML='<p>'+esc(await res.text())+'</p>'; return; }
 out.innerHTML=render(await res.json());
}
function esc(s){return (s||'').replace(/[&<>]/g, c=>({ '&':'&amp;','<':'&lt;','>':'&gt;'}[c]));}
function render(o){
 let h='<p>status: <code>'+esc(String(o.status))+'</code></p>';
 if(o.new_line!==undefined) h+='<p class="new"><code>'+esc(o.new_line)+'</code></p>';
 if(o.matches&&o.matches.length){
	h+='<table><thead><tr><th>#</th><th>WORD</th><th>OPPOSITE</th><th>COL</th><th>MASK</th></tr></thead><tbody>';
	o.matches.forEach((m,i)=>{
	 h+='<tr><td>'+(i+1)+'</td><td>'+esc(m.word)+'</td><td>'+esc(m.opposite)+'</td><td>'+m.index+'</td><td>'+(m.use_mask?'yes':'no')+'</td></tr>';
	});
	h+='</tbody></table>';
 }
 return h;
}
</script></body></html>`
