package asset

// DefaultManifest maps every compiled-in asset key to a tileset path
// Paths are relative to the configured assets root
const DefaultManifest = `
# === Font tilesets ===
# 16x16 grid, code page 437 order, one glyph per cell

[fonts]
acorn = "images/acorn.png"
alloy = "images/alloy.png"
anikki = "images/anikki.png"
anikkisquare = "images/anikkisquare.png"
buddy = "images/buddy.png"
buddygraphical = "images/buddygraphical.png"
cgathick = "images/cgathick.png"
cgathin = "images/cgathin.png"
cheepicus8 = "images/cheepicus8.png"
cheepicus12 = "images/cheepicus12.png"
cheepicus14 = "images/cheepicus14.png"
cheepicus15 = "images/cheepicus15.png"
curses = "images/curses.png"
db = "images/db.png"
ddw = "images/ddw.png"
dullard = "images/dullard.png"
geti = "images/geti.png"
haberdash = "images/haberdash.png"
herrbdog7 = "images/herrbdog7.png"
herrbdog12 = "images/herrbdog12.png"
jdpage = "images/jdpage.png"
kein = "images/kein.png"
kren = "images/kren.png"
ln = "images/ln.png"
nightmare = "images/nightmare.png"
markvii = "images/markvii.png"
mkv = "images/mkv.png"
mkvsolid = "images/mkvsolid.png"
nice = "images/nice.png"
nobbins = "images/nobbins.png"
nostalgia = "images/nostalgia.png"
pastiche = "images/pastiche.png"
paul = "images/paul.png"
potash8 = "images/potash8.png"
potash10 = "images/potash10.png"
rde = "images/rde.png"
smoothwalls = "images/smoothwalls.png"
taffer = "images/taffer.png"
talryth = "images/talryth.png"
terbert7 = "images/terbert7.png"
terbert10 = "images/terbert10.png"
terminus = "images/terminus.png"
tilesetunknown = "images/tilesetunknown.png"
tocky = "images/tocky.png"
unknown = "images/unknown.png"
vidumec = "images/vidumec.png"
yayo8 = "images/yayo8.png"
yayo13 = "images/yayo13.png"
zaratustra5 = "images/zaratustra5.png"
zaratustra8 = "images/zaratustra8.png"
zesty = "images/zesty.png"
`
