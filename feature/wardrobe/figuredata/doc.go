// Package figuredata parses the figure-definition XML document.
//
// The document lists palettes of colors and settypes of sets:
//
//	<figuredata>
//	  <colors><palette id="3"><color id="1" index="1" club="0" selectable="1">FFFFFF</color></palette></colors>
//	  <sets><settype type="ch" paletteid="3"><set id="210" gender="M" club="0" colorable="1" selectable="1" sellable="0">
//	    <part id="1" type="ch" colorable="1" index="0" colorindex="1"/>
//	  </set></settype></sets>
//	</figuredata>
//
// Only settypes of known categories are kept.
package figuredata
