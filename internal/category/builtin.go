package category

// The built-in table. The historical category set assigned a handful of
// extensions to two categories (.rtf, .csv, .js, .bin, most of the
// CAD/3D overlap with Design) and lookups silently kept the first; here
// the earlier category keeps the extension outright so the table builds
// under the one-category-per-extension rule.
var builtin = mustTable([]Category{
	{Name: "PDFs", Extensions: []string{".pdf"}},
	{Name: "Word", Extensions: []string{".doc", ".docx", ".docm", ".dot", ".dotx", ".dotm", ".rtf"}},
	{Name: "Excel", Extensions: []string{".xls", ".xlsx", ".xlsm", ".xlsb", ".xlt", ".xltx", ".xltm", ".csv"}},
	{Name: "PowerPoint", Extensions: []string{".ppt", ".pptx", ".pptm", ".pot", ".potx", ".potm", ".pps", ".ppsx", ".ppsm"}},
	{Name: "Text", Extensions: []string{".txt", ".md", ".log", ".readme"}},
	{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".webp", ".svg", ".ico", ".raw", ".cr2", ".nef", ".orf", ".sr2", ".dng", ".heic", ".heif"}},
	{Name: "Videos", Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".3gp", ".mpg", ".mpeg", ".m2v", ".divx", ".asf", ".rm", ".rmvb", ".vob", ".ts", ".mts", ".m2ts"}},
	{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a", ".opus", ".aiff", ".au", ".ra", ".midi", ".mid", ".ac3", ".dts"}},
	{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".cab", ".ace", ".arj", ".lzh", ".sit", ".sitx", ".sea"}},
	{Name: "Executables", Extensions: []string{".exe", ".msi", ".msu", ".deb", ".rpm", ".dmg", ".pkg", ".app", ".appx", ".msix", ".apk", ".ipa", ".run", ".bin", ".com", ".bat", ".cmd", ".sh", ".ps1"}},
	{Name: "Code", Extensions: []string{".py", ".js", ".html", ".htm", ".css", ".php", ".java", ".cpp", ".c", ".h", ".cs", ".rb", ".go", ".rs", ".swift", ".kt", ".scala", ".pl", ".lua", ".r", ".m", ".sql"}},
	{Name: "Web", Extensions: []string{".asp", ".aspx", ".jsp", ".scss", ".sass", ".less", ".vue", ".jsx", ".tsx", ".json", ".xml", ".yaml", ".yml"}},
	{Name: "Data", Extensions: []string{".tsv", ".db", ".sqlite", ".sqlite3", ".mdb", ".accdb", ".dbf", ".sav", ".dta"}},
	{Name: "Design", Extensions: []string{".psd", ".ai", ".eps", ".indd", ".sketch", ".fig", ".xd", ".cdr", ".dwg", ".dxf", ".step", ".iges", ".stl", ".obj", ".fbx", ".blend", ".max", ".ma", ".mb"}},
	{Name: "System", Extensions: []string{".dll", ".sys", ".drv", ".ocx", ".cpl", ".scr", ".vxd", ".inf", ".reg", ".ini", ".cfg", ".conf", ".config", ".properties", ".plist"}},
	{Name: "Fonts", Extensions: []string{".ttf", ".otf", ".woff", ".woff2", ".eot", ".pfb", ".pfm", ".afm", ".bdf", ".pcf"}},
	{Name: "Ebooks", Extensions: []string{".epub", ".mobi", ".azw", ".azw3", ".fb2", ".lit", ".lrf", ".pdb", ".pml", ".tcr"}},
	{Name: "DiskImages", Extensions: []string{".iso", ".img", ".nrg", ".mdf", ".cue", ".ccd", ".sub", ".vcd", ".vhd", ".vhdx", ".vmdk", ".vdi", ".qcow2"}},
	{Name: "Backup", Extensions: []string{".bak", ".backup", ".old", ".tmp", ".temp", ".swp", ".swo", ".cache", ".dat", ".dmp"}},
	{Name: "Certificates", Extensions: []string{".crt", ".cer", ".pem", ".key", ".p12", ".pfx", ".jks", ".keystore", ".pub", ".sig"}},
	{Name: "CAD", Extensions: []string{".stp", ".igs", ".catpart", ".catproduct", ".prt", ".asm", ".sldprt", ".sldasm", ".slddrw"}},
	{Name: "3D_Models", Extensions: []string{".dae", ".3ds", ".ply", ".x3d", ".gltf", ".glb"}},
	{Name: "Email", Extensions: []string{".msg", ".eml", ".mbox", ".pst", ".ost", ".dbx", ".mbx", ".emlx"}},
	{Name: "Calendar", Extensions: []string{".ics", ".ical", ".vcs", ".vcf", ".ldif"}},
})

// Default returns the built-in extension table.
func Default() *Table {
	return builtin
}

func mustTable(categories []Category) *Table {
	t, err := NewTable(categories)
	if err != nil {
		panic(err)
	}
	return t
}
