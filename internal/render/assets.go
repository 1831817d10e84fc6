package render

// pageCSS keeps pages readable without any external stylesheet.
const pageCSS = `body{font-family:sans-serif;max-width:52rem;margin:0 auto;padding:1rem;color:#222}
h1{border-bottom:2px solid #0076a8;padding-bottom:.3rem}
section{margin:1.2rem 0}
section>h2{cursor:pointer;font-size:1.2rem;border-bottom:1px solid #ddd;padding-bottom:.2rem}
section.closed>*:not(h2){display:none}
pre{background:#f5f5f5;padding:.6rem;overflow-x:auto}
pre.syntax-summary a{text-decoration:none}
code{background:#f5f5f5;padding:0 .15rem}
.synopsis{font-size:1.05rem;color:#444}
.member{margin:.8rem 0;padding-left:.8rem;border-left:3px solid #eee}
.member-meta{color:#555;font-size:.9rem}
.member-flags{font-style:italic}
.member-group{color:#0076a8}
.callout{border-left:4px solid #999;padding:.2rem .8rem;margin:.8rem 0;background:#fafafa}
.callout-title{font-weight:bold;margin:.2rem 0}
.callout.note{border-color:#0076a8}
.callout.tip{border-color:#2e7d32}
.callout.warning{border-color:#ef6c00}
.function-table td{padding:.2rem .8rem .2rem 0;vertical-align:top}
a.xref-fallback{color:#777}
`

// collapsibleScript toggles section bodies from their headings. Appended
// to every page.
const collapsibleScript = `<script>
document.querySelectorAll("section.collapsible>h2").forEach(function(h){
  h.addEventListener("click",function(){h.parentElement.classList.toggle("closed");});
});
</script>
`

// mathScript loads the typesetter only for pages that actually contain
// math spans.
const mathScript = `<script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
`
