package diagfmt

import "vesuvius/internal/source"

// displayPath форматирует имя файла диагностики согласно режиму.
// Синтетические имена вида "<Void>" не трогаем.
func displayPath(name string, mode PathMode, baseDir string) string {
	if name == "" || name[0] == '<' || mode == PathModeAsIs {
		return name
	}
	return source.FormatPath(name, mode.String(), baseDir)
}
